package services

import (
	"context"

	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/models"
)

// TransactionSvcFacade wraps the backend /transactions resource.
type TransactionSvcFacade interface {
	// ListTransactions returns the unfiltered global history (admin).
	ListTransactions(ctx context.Context) ([]models.Transaction, error)

	// GetHistory returns one account's history. Omitted bounds default to
	// five years ago through today.
	GetHistory(ctx context.Context, numero, start, end string) ([]models.Transaction, error)

	// GetTransactions dispatches on the filters: by-account history when an
	// account is given, else the global list.
	GetTransactions(ctx context.Context, filters dto.TransactionFilters) ([]models.Transaction, error)

	// Deposit credits an account (admin).
	Deposit(ctx context.Context, req dto.OperationRequest) (*dto.OperationResult, error)

	// Withdraw debits an account (admin).
	Withdraw(ctx context.Context, req dto.OperationRequest) (*dto.OperationResult, error)

	// Transfer moves money between two accounts.
	Transfer(ctx context.Context, req dto.VirementRequest) (*dto.OperationResult, error)
}
