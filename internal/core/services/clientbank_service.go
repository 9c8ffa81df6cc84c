package services

import (
	"context"
	"fmt"
	"sync"

	portssvc "github.com/egabank/egabank_portal/internal/core/ports/services"
	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/shopspring/decimal"
)

// ClientBankService composes the resource services into the logged-in
// client's consolidated views. Pure composition, no state.
type ClientBankService struct {
	BaseService
	clients      portssvc.ClientSvcFacade
	comptes      portssvc.CompteSvcFacade
	transactions portssvc.TransactionSvcFacade
	releves      portssvc.ReleveSvcFacade
}

func NewClientBankService(
	clients portssvc.ClientSvcFacade,
	comptes portssvc.CompteSvcFacade,
	transactions portssvc.TransactionSvcFacade,
	releves portssvc.ReleveSvcFacade,
) *ClientBankService {
	return &ClientBankService{
		clients:      clients,
		comptes:      comptes,
		transactions: transactions,
		releves:      releves,
	}
}

// GetDashboard fetches profile and accounts in parallel, then the first
// account's history as a dependent fetch. Both parallel fetches must
// succeed; the dependent one is skipped when the client has no account.
func (s *ClientBankService) GetDashboard(ctx context.Context) (*dto.ClientDashboard, error) {
	var (
		wg          sync.WaitGroup
		profile     *models.Client
		accounts    []models.Compte
		profileErr  error
		accountsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		profile, profileErr = s.clients.GetClientMe(ctx)
	}()
	go func() {
		defer wg.Done()
		accounts, accountsErr = s.comptes.MyAccounts(ctx)
	}()
	wg.Wait()

	if profileErr != nil {
		return nil, fmt.Errorf("dashboard profile fetch failed: %w", profileErr)
	}
	if accountsErr != nil {
		return nil, fmt.Errorf("dashboard accounts fetch failed: %w", accountsErr)
	}

	dashboard := &dto.ClientDashboard{
		Profile:      profile,
		Accounts:     accounts,
		Transactions: []models.Transaction{},
		TotalBalance: decimal.Zero,
	}
	for _, account := range accounts {
		dashboard.TotalBalance = dashboard.TotalBalance.Add(account.Solde)
	}

	if len(accounts) > 0 {
		history, err := s.transactions.GetHistory(ctx, accounts[0].NumeroCompte, "", "")
		if err != nil {
			s.LogError(ctx, err, "dashboard history degraded to empty", "numero", accounts[0].NumeroCompte)
		} else {
			dashboard.Transactions = history
		}
	}
	return dashboard, nil
}

func (s *ClientBankService) GetProfile(ctx context.Context) (*models.Client, error) {
	return s.clients.GetClientMe(ctx)
}

func (s *ClientBankService) GetAccounts(ctx context.Context) ([]models.Compte, error) {
	return s.comptes.MyAccounts(ctx)
}

func (s *ClientBankService) GetAccountByNumero(ctx context.Context, numero string) (*models.Compte, error) {
	return s.comptes.GetCompteByNumero(ctx, numero)
}

func (s *ClientBankService) GetTransactions(ctx context.Context, filters dto.TransactionFilters) ([]models.Transaction, error) {
	return s.transactions.GetTransactions(ctx, filters)
}

// PerformTransfer submits a transfer. The form speaks the portal vocabulary
// (compteSource/compteDestination/montant); the transaction service renames
// it for the backend.
func (s *ClientBankService) PerformTransfer(ctx context.Context, req dto.VirementRequest) (*dto.OperationResult, error) {
	return s.transactions.Transfer(ctx, req)
}

func (s *ClientBankService) GenerateReleve(ctx context.Context, numero, dateDebut, dateFin string) (*models.Releve, error) {
	return s.releves.GenerateReleve(ctx, numero, dateDebut, dateFin)
}
