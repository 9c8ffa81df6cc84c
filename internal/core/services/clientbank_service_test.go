package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/egabank/egabank_portal/internal/core/services"
	"github.com/egabank/egabank_portal/internal/dto"
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ClientBankServiceTestSuite struct {
	suite.Suite
	mockClients      *MockClientSvc
	mockComptes      *MockCompteSvc
	mockTransactions *MockTransactionSvc
	mockReleves      *MockReleveSvc
	service          *services.ClientBankService
	ctx              context.Context
}

func (suite *ClientBankServiceTestSuite) SetupTest() {
	suite.mockClients = new(MockClientSvc)
	suite.mockComptes = new(MockCompteSvc)
	suite.mockTransactions = new(MockTransactionSvc)
	suite.mockReleves = new(MockReleveSvc)
	suite.service = services.NewClientBankService(
		suite.mockClients, suite.mockComptes, suite.mockTransactions, suite.mockReleves)
	suite.ctx = context.Background()
}

func (suite *ClientBankServiceTestSuite) TestGetDashboard() {
	profile := &models.Client{ID: "1", Nom: "Dupont"}
	accounts := []models.Compte{
		{ID: "1", NumeroCompte: "EGA0001", Solde: decimal.NewFromInt(1000)},
		{ID: "2", NumeroCompte: "EGA0002", Solde: decimal.NewFromInt(500)},
	}
	history := []models.Transaction{{ID: "t1"}, {ID: "t2"}}

	suite.mockClients.On("GetClientMe", suite.ctx).Return(profile, nil)
	suite.mockComptes.On("MyAccounts", suite.ctx).Return(accounts, nil)
	suite.mockTransactions.On("GetHistory", suite.ctx, "EGA0001", "", "").Return(history, nil)

	dashboard, err := suite.service.GetDashboard(suite.ctx)

	suite.NoError(err)
	suite.Equal("Dupont", dashboard.Profile.Nom)
	suite.Len(dashboard.Accounts, 2)
	suite.Len(dashboard.Transactions, 2)
	suite.True(dashboard.TotalBalance.Equal(decimal.NewFromInt(1500)))
}

func (suite *ClientBankServiceTestSuite) TestGetDashboard_ProfileFailureFails() {
	suite.mockClients.On("GetClientMe", suite.ctx).Return(nil, errors.New("backend down"))
	suite.mockComptes.On("MyAccounts", suite.ctx).Return([]models.Compte{}, nil)

	_, err := suite.service.GetDashboard(suite.ctx)

	suite.Error(err)
}

func (suite *ClientBankServiceTestSuite) TestGetDashboard_HistoryDegrades() {
	profile := &models.Client{ID: "1"}
	accounts := []models.Compte{{NumeroCompte: "EGA0001", Solde: decimal.NewFromInt(100)}}

	suite.mockClients.On("GetClientMe", suite.ctx).Return(profile, nil)
	suite.mockComptes.On("MyAccounts", suite.ctx).Return(accounts, nil)
	suite.mockTransactions.On("GetHistory", suite.ctx, "EGA0001", "", "").
		Return(nil, errors.New("history unavailable"))

	dashboard, err := suite.service.GetDashboard(suite.ctx)

	suite.NoError(err, "a missing history must not fail the dashboard")
	suite.Empty(dashboard.Transactions)
}

func (suite *ClientBankServiceTestSuite) TestGetDashboard_NoAccountsSkipsHistory() {
	suite.mockClients.On("GetClientMe", suite.ctx).Return(&models.Client{ID: "1"}, nil)
	suite.mockComptes.On("MyAccounts", suite.ctx).Return([]models.Compte{}, nil)

	dashboard, err := suite.service.GetDashboard(suite.ctx)

	suite.NoError(err)
	suite.Empty(dashboard.Transactions)
	suite.True(dashboard.TotalBalance.IsZero())
	suite.mockTransactions.AssertNotCalled(suite.T(), "GetHistory",
		suite.ctx, "", "", "")
}

func (suite *ClientBankServiceTestSuite) TestPerformTransfer_Delegates() {
	req := dto.VirementRequest{CompteSource: "EGA0001", CompteDestination: "EGA0002", Montant: decimal.NewFromInt(100)}
	suite.mockTransactions.On("Transfer", suite.ctx, req).
		Return(&dto.OperationResult{Message: "Virement effectué avec succès"}, nil)

	result, err := suite.service.PerformTransfer(suite.ctx, req)

	suite.NoError(err)
	suite.Equal("Virement effectué avec succès", result.Message)
}

func (suite *ClientBankServiceTestSuite) TestGenerateReleve_Delegates() {
	releve := &models.Releve{ID: "REL-1", NumeroCompte: "EGA0001"}
	suite.mockReleves.On("GenerateReleve", suite.ctx, "EGA0001", "2024-01-01", "2024-03-31").
		Return(releve, nil)

	got, err := suite.service.GenerateReleve(suite.ctx, "EGA0001", "2024-01-01", "2024-03-31")

	suite.NoError(err)
	suite.Equal("REL-1", got.ID)
}

func TestClientBankServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientBankServiceTestSuite))
}
