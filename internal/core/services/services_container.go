package services

import (
	"github.com/egabank/egabank_portal/internal/core/ports"
	portssvc "github.com/egabank/egabank_portal/internal/core/ports/services"
	"github.com/egabank/egabank_portal/internal/session"
	"github.com/egabank/egabank_portal/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(gateway ports.BackendGateway, store *session.Store, analytics *utils.PosthogClientWrapper) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Resource services first; the aggregation services compose them.
	container.Client = NewClientService(gateway)
	container.Compte = NewCompteService(gateway)
	container.Transaction = NewTransactionService(gateway)
	container.Releve = NewReleveService(gateway)

	container.Bank = NewBankService(container.Client, container.Compte, container.Transaction)
	container.ClientBank = NewClientBankService(container.Client, container.Compte, container.Transaction, container.Releve)
	container.Auth = NewAuthService(gateway, store, analytics)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade        = (*AuthService)(nil)
	_ portssvc.ClientSvcFacade      = (*ClientService)(nil)
	_ portssvc.CompteSvcFacade      = (*CompteService)(nil)
	_ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
	_ portssvc.ReleveSvcFacade      = (*ReleveService)(nil)
	_ portssvc.BankSvcFacade        = (*BankService)(nil)
	_ portssvc.ClientBankSvcFacade  = (*ClientBankService)(nil)
)
