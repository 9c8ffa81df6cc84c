package backend_test

import (
	"testing"
	"time"

	"github.com/egabank/egabank_portal/internal/backend"
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapClient_EnglishFields(t *testing.T) {
	client := backend.MapClient(map[string]any{
		"id":          float64(42),
		"firstName":   "Jean",
		"lastName":    "Dupont",
		"email":       "jean.dupont@example.com",
		"birthDate":   "1990-05-12",
		"gender":      "M",
		"address":     "Cotonou",
		"phoneNumber": "+22990000000",
		"nationality": "Béninoise",
		"status":      "ACTIVE",
	})

	require.NotNil(t, client)
	assert.Equal(t, "42", client.ID)
	assert.Equal(t, "Dupont", client.Nom)
	assert.Equal(t, "Jean", client.Prenom)
	assert.Equal(t, "jean.dupont@example.com", client.Email)
	assert.Equal(t, "Cotonou", client.Adresse)
	assert.Equal(t, models.ClientActif, client.Statut)
	assert.Equal(t, 1990, client.DateNaissance.Year())
}

func TestMapClient_FrenchFieldsAndSuspended(t *testing.T) {
	client := backend.MapClient(map[string]any{
		"id":     "7",
		"nom":    "Akpovi",
		"prenom": "Awa",
		"status": "SUSPENDED",
	})

	require.NotNil(t, client)
	assert.Equal(t, "7", client.ID)
	assert.Equal(t, "Akpovi", client.Nom)
	assert.Equal(t, models.ClientSuspendu, client.Statut)
}

func TestMapClient_EmptyPayloadStillPopulates(t *testing.T) {
	client := backend.MapClient(map[string]any{})

	require.NotNil(t, client)
	assert.Equal(t, models.ClientActif, client.Statut)
	assert.Equal(t, "M", client.Sexe)
	assert.WithinDuration(t, time.Now(), client.DateNaissance, time.Minute)
}

func TestMapClient_NilIsNil(t *testing.T) {
	assert.Nil(t, backend.MapClient(nil))
}

func TestMapCompte_NumberSynonyms(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"accountNumber", map[string]any{"accountNumber": "EGA0001"}},
		{"iban", map[string]any{"iban": "EGA0001"}},
		{"numeroCompte", map[string]any{"numeroCompte": "EGA0001"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			compte := backend.MapCompte(tc.payload)
			require.NotNil(t, compte)
			assert.Equal(t, "EGA0001", compte.NumeroCompte)
		})
	}
}

func TestMapCompte_Defaults(t *testing.T) {
	compte := backend.MapCompte(map[string]any{
		"id":            float64(3),
		"accountNumber": "EGA0003",
		"balance":       150000.50,
	})

	require.NotNil(t, compte)
	assert.Equal(t, "3", compte.ID)
	assert.Equal(t, models.CompteCourant, compte.Type)
	assert.Equal(t, models.CompteActif, compte.Statut)
	assert.Equal(t, "XOF", compte.Devise)
	assert.Equal(t, "Non renseigné", compte.ClientNom)
	assert.True(t, compte.Solde.Equal(decimal.NewFromFloat(150000.50)))
}

func TestMapCompte_NestedOwner(t *testing.T) {
	compte := backend.MapCompte(map[string]any{
		"accountNumber": "EGA0009",
		"accountType":   "SAVINGS",
		"status":        "BLOCKED",
		"client": map[string]any{
			"id":        float64(12),
			"firstName": "Awa",
			"lastName":  "Akpovi",
		},
	})

	require.NotNil(t, compte)
	assert.Equal(t, models.CompteEpargne, compte.Type)
	assert.Equal(t, models.CompteBloque, compte.Statut)
	assert.Equal(t, "12", compte.ClientID)
	assert.Equal(t, "Awa Akpovi", compte.ClientNom)
}

func TestMapTransaction_TypeSynonyms(t *testing.T) {
	cases := []struct {
		raw      string
		expected models.TransactionType
	}{
		{"DEPOSIT", models.TransactionDepot},
		{"deposit", models.TransactionDepot},
		{"DEPOT", models.TransactionDepot},
		{"WITHDRAWAL", models.TransactionRetrait},
		{"RETRAIT", models.TransactionRetrait},
		{"TRANSFER", models.TransactionVirement},
		{"VIREMENT", models.TransactionVirement},
		{"UNKNOWN", models.TransactionDepot},
		{"", models.TransactionDepot},
	}
	for _, tc := range cases {
		tx := backend.MapTransaction(map[string]any{"type": tc.raw})
		require.NotNil(t, tx)
		assert.Equal(t, tc.expected, tx.Type, "type %q", tc.raw)
	}
}

func TestMapTransaction_FullPayload(t *testing.T) {
	tx := backend.MapTransaction(map[string]any{
		"id":                  "tx-1",
		"type":                "TRANSFER",
		"amount":              2500.0,
		"timestamp":           "2024-03-01T10:15:00",
		"description":         "Loyer",
		"accountNumber":       "EGA0001",
		"targetAccountNumber": "EGA0002",
		"status":              "completed",
	})

	require.NotNil(t, tx)
	assert.Equal(t, models.TransactionVirement, tx.Type)
	assert.Equal(t, "EGA0001", tx.CompteSource)
	assert.Equal(t, "EGA0002", tx.CompteDestination)
	assert.Equal(t, models.TransactionCompleted, tx.Statut)
	assert.Equal(t, 2024, tx.Date.Year())
}

func TestMapTransaction_DefaultStatusIsSuccess(t *testing.T) {
	tx := backend.MapTransaction(map[string]any{"type": "DEPOT"})
	require.NotNil(t, tx)
	assert.Equal(t, models.TransactionSuccess, tx.Statut)
}

func TestUnwrapList_BareArray(t *testing.T) {
	items := backend.UnwrapList([]any{
		map[string]any{"id": "1"},
		map[string]any{"id": "2"},
		"noise",
	})
	assert.Len(t, items, 2)
}

func TestUnwrapList_Envelopes(t *testing.T) {
	for _, key := range []string{"data", "accounts", "clients", "transactions", "items", "content"} {
		items := backend.UnwrapList(map[string]any{
			key: []any{map[string]any{"id": "1"}},
		})
		assert.Len(t, items, 1, "envelope %q", key)
	}
}

func TestUnwrapList_UnknownShapesAreEmpty(t *testing.T) {
	assert.Empty(t, backend.UnwrapList(map[string]any{"unexpected": []any{map[string]any{}}}))
	assert.Empty(t, backend.UnwrapList("just text"))
	assert.Empty(t, backend.UnwrapList(nil))
	assert.Empty(t, backend.UnwrapList(42.0))
}
