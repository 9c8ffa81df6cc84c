package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the canonical transaction type. The backend uses the
// English synonyms on some endpoints; normalization collapses them to the
// French set.
type TransactionType string

const (
	TransactionDepot    TransactionType = "DEPOT"
	TransactionRetrait  TransactionType = "RETRAIT"
	TransactionVirement TransactionType = "VIREMENT"
)

// TransactionStatus values observed across backend endpoints.
type TransactionStatus string

const (
	TransactionSuccess   TransactionStatus = "SUCCESS"
	TransactionPending   TransactionStatus = "PENDING"
	TransactionFailed    TransactionStatus = "FAILED"
	TransactionCompleted TransactionStatus = "COMPLETED"
)

// Transaction is the canonical view of one ledger movement. Source and
// destination are account numbers, not ids, and are only both set for
// transfers.
type Transaction struct {
	ID                string            `json:"id"`
	Type              TransactionType   `json:"type"`
	Montant           decimal.Decimal   `json:"montant"`
	Date              time.Time         `json:"date"`
	Description       string            `json:"description"`
	CompteSource      string            `json:"compteSource,omitempty"`
	CompteDestination string            `json:"compteDestination,omitempty"`
	Statut            TransactionStatus `json:"statut"`
}
