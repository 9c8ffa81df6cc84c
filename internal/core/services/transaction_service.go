package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/egabank/egabank_portal/internal/apperrors"
	"github.com/egabank/egabank_portal/internal/backend"
	"github.com/egabank/egabank_portal/internal/core/ports"
	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/egabank/egabank_portal/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// historyBoundLayout is the datetime format the backend history endpoint
// expects for its start/end query parameters.
const historyBoundLayout = "2006-01-02T15:04:05"

// TransactionService wraps the backend /transactions resource.
type TransactionService struct {
	BaseService
	gateway ports.BackendGateway
}

func NewTransactionService(gateway ports.BackendGateway) *TransactionService {
	return &TransactionService{gateway: gateway}
}

// ListTransactions returns the unfiltered global history (admin semantics).
func (s *TransactionService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	resp, err := s.gateway.Get(ctx, "/transactions")
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return backend.MapTransactions(backend.UnwrapList(resp.JSON)), nil
}

// GetHistory returns one account's history. The backend requires both
// bounds; when the caller omits them the default window is five years ago
// through today.
func (s *TransactionService) GetHistory(ctx context.Context, numero, start, end string) ([]models.Transaction, error) {
	if start == "" || end == "" {
		now := time.Now()
		start = now.AddDate(-5, 0, 0).Format(historyBoundLayout)
		end = now.Format(historyBoundLayout)
	}
	path := fmt.Sprintf("/transactions/history/%s?start=%s&end=%s",
		url.PathEscape(numero), url.QueryEscape(start), url.QueryEscape(end))
	resp, err := s.gateway.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history for %s: %w", numero, err)
	}
	return backend.MapTransactions(backend.UnwrapList(resp.JSON)), nil
}

// GetTransactions dispatches on the filters: the by-account history endpoint
// when an account is given, else the global list.
func (s *TransactionService) GetTransactions(ctx context.Context, filters dto.TransactionFilters) ([]models.Transaction, error) {
	if filters.CompteID != "" {
		return s.GetHistory(ctx, filters.CompteID, filters.DateDebut, filters.DateFin)
	}
	return s.ListTransactions(ctx)
}

func (s *TransactionService) Deposit(ctx context.Context, req dto.OperationRequest) (*dto.OperationResult, error) {
	if err := validateAmount(req.Montant); err != nil {
		return nil, err
	}
	return s.submit(ctx, "/transactions/deposit", mapping.ToOperationBody(req))
}

func (s *TransactionService) Withdraw(ctx context.Context, req dto.OperationRequest) (*dto.OperationResult, error) {
	if err := validateAmount(req.Montant); err != nil {
		return nil, err
	}
	return s.submit(ctx, "/transactions/withdraw", mapping.ToOperationBody(req))
}

func (s *TransactionService) Transfer(ctx context.Context, req dto.VirementRequest) (*dto.OperationResult, error) {
	if err := validateAmount(req.Montant); err != nil {
		return nil, err
	}
	if req.CompteSource == req.CompteDestination {
		return nil, fmt.Errorf("source and destination accounts are identical: %w", apperrors.ErrValidation)
	}
	return s.submit(ctx, "/transactions/transfer", mapping.ToTransferBody(req))
}

// submit posts a mutating operation. The backend answers these endpoints
// with either a normalized transaction (JSON) or a bare confirmation string;
// both are surfaced as an OperationResult. Write errors propagate to the
// caller, which must show them; there is no retry.
func (s *TransactionService) submit(ctx context.Context, path string, body any) (*dto.OperationResult, error) {
	resp, err := s.gateway.Post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	if obj := resp.Object(); obj != nil {
		return &dto.OperationResult{Transaction: backend.MapTransaction(obj)}, nil
	}
	return &dto.OperationResult{Message: resp.Text()}, nil
}

func validateAmount(montant decimal.Decimal) error {
	if !montant.IsPositive() {
		return fmt.Errorf("montant must be positive: %w", apperrors.ErrValidation)
	}
	return nil
}
