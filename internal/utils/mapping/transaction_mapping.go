package mapping

import (
	"github.com/egabank/egabank_portal/internal/dto"
)

// The portal's forms speak French (compteSource, montant); the backend
// transaction endpoints speak English (accountNumber, amount). These
// converters are the only place that rename happens.

// OperationBody is the fixed body shape for the deposit and withdraw
// endpoints. Amounts go out as JSON numbers.
type OperationBody struct {
	AccountNumber string  `json:"accountNumber"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
}

// TransferBody is the fixed body shape for the transfer endpoint.
type TransferBody struct {
	AccountNumber       string  `json:"accountNumber"`
	TargetAccountNumber string  `json:"targetAccountNumber"`
	Amount              float64 `json:"amount"`
	Description         string  `json:"description"`
}

// ToOperationBody converts a portal deposit/withdraw request to the backend
// vocabulary.
func ToOperationBody(req dto.OperationRequest) OperationBody {
	return OperationBody{
		AccountNumber: req.NumeroCompte,
		Amount:        req.Montant.InexactFloat64(),
		Description:   req.Description,
	}
}

// ToTransferBody converts a portal virement request to the backend
// vocabulary.
func ToTransferBody(req dto.VirementRequest) TransferBody {
	return TransferBody{
		AccountNumber:       req.CompteSource,
		TargetAccountNumber: req.CompteDestination,
		Amount:              req.Montant.InexactFloat64(),
		Description:         req.Description,
	}
}
