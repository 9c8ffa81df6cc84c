package services_test

import (
	"context"
	"encoding/json"

	"github.com/egabank/egabank_portal/internal/backend"
	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockGateway is a mock type for the BackendGateway interface
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Get(ctx context.Context, path string) (*backend.Response, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Response), args.Error(1)
}

func (m *MockGateway) Post(ctx context.Context, path string, body any) (*backend.Response, error) {
	args := m.Called(ctx, path, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Response), args.Error(1)
}

func (m *MockGateway) Put(ctx context.Context, path string, body any) (*backend.Response, error) {
	args := m.Called(ctx, path, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Response), args.Error(1)
}

func (m *MockGateway) Delete(ctx context.Context, path string) (*backend.Response, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Response), args.Error(1)
}

// jsonResponse builds the response the gateway would produce for a JSON body.
func jsonResponse(v any) *backend.Response {
	raw, _ := json.Marshal(v)
	var decoded any
	_ = json.Unmarshal(raw, &decoded)
	return &backend.Response{Status: 200, Body: raw, JSON: decoded}
}

// textResponse builds the response the gateway would produce for a
// plain-text body.
func textResponse(text string) *backend.Response {
	return &backend.Response{Status: 200, Body: []byte(text)}
}

// --- Mock resource facades for the aggregation services ---

type MockClientSvc struct {
	mock.Mock
}

func (m *MockClientSvc) ListClients(ctx context.Context) ([]models.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Client), args.Error(1)
}

func (m *MockClientSvc) GetClientByID(ctx context.Context, id string) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientSvc) GetClientMe(ctx context.Context) (*models.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientSvc) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*models.Client, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientSvc) UpdateClient(ctx context.Context, id string, req dto.UpdateClientRequest) (*models.Client, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockClientSvc) SearchClients(ctx context.Context, term string) ([]models.Client, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Client), args.Error(1)
}

func (m *MockClientSvc) SuspendClient(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockClientSvc) ActivateClient(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockClientSvc) DeleteClient(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCompteSvc struct {
	mock.Mock
}

func (m *MockCompteSvc) ListComptes(ctx context.Context) ([]models.Compte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Compte), args.Error(1)
}

func (m *MockCompteSvc) MyAccounts(ctx context.Context) ([]models.Compte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Compte), args.Error(1)
}

func (m *MockCompteSvc) GetComptesByClientID(ctx context.Context, clientID string) ([]models.Compte, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Compte), args.Error(1)
}

func (m *MockCompteSvc) GetCompteByID(ctx context.Context, id string) (*models.Compte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Compte), args.Error(1)
}

func (m *MockCompteSvc) GetCompteByNumero(ctx context.Context, numero string) (*models.Compte, error) {
	args := m.Called(ctx, numero)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Compte), args.Error(1)
}

func (m *MockCompteSvc) CreateCompte(ctx context.Context, req dto.CreateCompteRequest) (*models.Compte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Compte), args.Error(1)
}

type MockTransactionSvc struct {
	mock.Mock
}

func (m *MockTransactionSvc) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionSvc) GetHistory(ctx context.Context, numero, start, end string) ([]models.Transaction, error) {
	args := m.Called(ctx, numero, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionSvc) GetTransactions(ctx context.Context, filters dto.TransactionFilters) ([]models.Transaction, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionSvc) Deposit(ctx context.Context, req dto.OperationRequest) (*dto.OperationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OperationResult), args.Error(1)
}

func (m *MockTransactionSvc) Withdraw(ctx context.Context, req dto.OperationRequest) (*dto.OperationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OperationResult), args.Error(1)
}

func (m *MockTransactionSvc) Transfer(ctx context.Context, req dto.VirementRequest) (*dto.OperationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OperationResult), args.Error(1)
}

type MockReleveSvc struct {
	mock.Mock
}

func (m *MockReleveSvc) GenerateReleve(ctx context.Context, numero, dateDebut, dateFin string) (*models.Releve, error) {
	args := m.Called(ctx, numero, dateDebut, dateFin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Releve), args.Error(1)
}
