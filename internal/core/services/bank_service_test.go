package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/egabank/egabank_portal/internal/core/services"
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BankServiceTestSuite struct {
	suite.Suite
	mockClients      *MockClientSvc
	mockComptes      *MockCompteSvc
	mockTransactions *MockTransactionSvc
	service          *services.BankService
	ctx              context.Context
}

func (suite *BankServiceTestSuite) SetupTest() {
	suite.mockClients = new(MockClientSvc)
	suite.mockComptes = new(MockCompteSvc)
	suite.mockTransactions = new(MockTransactionSvc)
	suite.service = services.NewBankService(suite.mockClients, suite.mockComptes, suite.mockTransactions)
	suite.ctx = context.Background()
}

func (suite *BankServiceTestSuite) TestGetDashboardStats() {
	suite.mockClients.On("ListClients", suite.ctx).Return([]models.Client{{ID: "1"}, {ID: "2"}}, nil)
	suite.mockComptes.On("ListComptes", suite.ctx).Return([]models.Compte{
		{ID: "1", Solde: decimal.NewFromInt(150000)},
		{ID: "2", Solde: decimal.NewFromInt(50000)},
		{ID: "3", Solde: decimal.NewFromInt(25000)},
	}, nil)
	suite.mockTransactions.On("ListTransactions", suite.ctx).Return([]models.Transaction{{ID: "t1"}}, nil)

	stats, err := suite.service.GetDashboardStats(suite.ctx)

	suite.NoError(err)
	suite.Require().Len(stats, 4)
	suite.Equal("Total Clients", stats[0].Label)
	suite.Equal("2", stats[0].Value)
	suite.Equal("3", stats[1].Value)
	suite.Equal("1", stats[2].Value)
	suite.Equal("Capital Total", stats[3].Label)
	suite.Equal("225000 FCFA", stats[3].Value)
}

func (suite *BankServiceTestSuite) TestGetDashboardStats_PartialFailureDegrades() {
	suite.mockClients.On("ListClients", suite.ctx).Return(nil, errors.New("backend down"))
	suite.mockComptes.On("ListComptes", suite.ctx).Return([]models.Compte{
		{ID: "1", Solde: decimal.NewFromInt(1000)},
	}, nil)
	suite.mockTransactions.On("ListTransactions", suite.ctx).Return(nil, errors.New("backend down"))

	stats, err := suite.service.GetDashboardStats(suite.ctx)

	suite.NoError(err, "the dashboard renders even when some fetches fail")
	suite.Require().Len(stats, 4)
	suite.Equal("0", stats[0].Value)
	suite.Equal("1", stats[1].Value)
	suite.Equal("0", stats[2].Value)
	suite.Equal("1000 FCFA", stats[3].Value)
}

func (suite *BankServiceTestSuite) TestGetRecentTransactions_CapsAtTen() {
	all := make([]models.Transaction, 15)
	for i := range all {
		all[i] = models.Transaction{ID: string(rune('a' + i))}
	}
	suite.mockTransactions.On("ListTransactions", suite.ctx).Return(all, nil)

	recent := suite.service.GetRecentTransactions(suite.ctx)

	suite.Len(recent, 10)
}

func (suite *BankServiceTestSuite) TestGetRecentTransactions_ErrorYieldsEmpty() {
	suite.mockTransactions.On("ListTransactions", suite.ctx).Return(nil, errors.New("backend down"))

	recent := suite.service.GetRecentTransactions(suite.ctx)

	suite.NotNil(recent)
	suite.Empty(recent)
}

func TestBankServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankServiceTestSuite))
}
