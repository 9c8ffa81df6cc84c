package ports

import (
	"context"

	"github.com/egabank/egabank_portal/internal/backend"
)

// BackendGateway abstracts the HTTP gateway to the bank backend so services
// can be exercised against a mock in tests.
type BackendGateway interface {
	Get(ctx context.Context, path string) (*backend.Response, error)
	Post(ctx context.Context, path string, body any) (*backend.Response, error)
	Put(ctx context.Context, path string, body any) (*backend.Response, error)
	Delete(ctx context.Context, path string) (*backend.Response, error)
}
