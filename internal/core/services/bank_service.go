package services

import (
	"context"
	"strconv"
	"sync"

	portssvc "github.com/egabank/egabank_portal/internal/core/ports/services"
	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/shopspring/decimal"
)

// BankService aggregates the resource services into the admin dashboard
// view. It holds no state of its own; it is pure composition.
type BankService struct {
	BaseService
	clients      portssvc.ClientSvcFacade
	comptes      portssvc.CompteSvcFacade
	transactions portssvc.TransactionSvcFacade
}

func NewBankService(clients portssvc.ClientSvcFacade, comptes portssvc.CompteSvcFacade, transactions portssvc.TransactionSvcFacade) *BankService {
	return &BankService{clients: clients, comptes: comptes, transactions: transactions}
}

// GetDashboardStats issues the three list fetches concurrently. Each one
// degrades to an empty list on failure so the dashboard always renders.
func (s *BankService) GetDashboardStats(ctx context.Context) ([]dto.Stat, error) {
	var (
		wg           sync.WaitGroup
		clients      []models.Client
		comptes      []models.Compte
		transactions []models.Transaction
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		if list, err := s.clients.ListClients(ctx); err == nil {
			clients = list
		} else {
			s.LogError(ctx, err, "dashboard: clients fetch degraded to empty")
		}
	}()
	go func() {
		defer wg.Done()
		if list, err := s.comptes.ListComptes(ctx); err == nil {
			comptes = list
		} else {
			s.LogError(ctx, err, "dashboard: accounts fetch degraded to empty")
		}
	}()
	go func() {
		defer wg.Done()
		if list, err := s.transactions.ListTransactions(ctx); err == nil {
			transactions = list
		} else {
			s.LogError(ctx, err, "dashboard: transactions fetch degraded to empty")
		}
	}()
	wg.Wait()

	totalBalance := decimal.Zero
	for _, compte := range comptes {
		totalBalance = totalBalance.Add(compte.Solde)
	}

	return []dto.Stat{
		{Label: "Total Clients", Value: strconv.Itoa(len(clients))},
		{Label: "Total Comptes", Value: strconv.Itoa(len(comptes))},
		{Label: "Total Transactions", Value: strconv.Itoa(len(transactions))},
		{Label: "Capital Total", Value: totalBalance.StringFixed(0) + " FCFA"},
	}, nil
}

// GetRecentTransactions returns the first ten global transactions,
// degrading to empty on failure.
func (s *BankService) GetRecentTransactions(ctx context.Context) []models.Transaction {
	transactions, err := s.transactions.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "recent transactions degraded to empty")
		return []models.Transaction{}
	}
	if len(transactions) > 10 {
		transactions = transactions[:10]
	}
	return transactions
}
