package backend

import (
	"strconv"
	"strings"
	"time"

	"github.com/egabank/egabank_portal/internal/models"
	"github.com/shopspring/decimal"
)

// This file is the normalization boundary: every payload leaving the gateway
// goes through one of the Map* functions below, so nothing loosely typed
// escapes into the services. The backend has shipped several field-naming
// conventions over time (accountNumber vs iban vs numeroCompte, DEPOSIT vs
// DEPOT); resolution order is always documented name, then legacy names, then
// a type-appropriate default. Missing fields never cause an error.

// transactionTypeSynonyms collapses the English transaction types onto the
// canonical French set.
var transactionTypeSynonyms = map[string]models.TransactionType{
	"DEPOSIT":    models.TransactionDepot,
	"DEPOT":      models.TransactionDepot,
	"WITHDRAWAL": models.TransactionRetrait,
	"RETRAIT":    models.TransactionRetrait,
	"TRANSFER":   models.TransactionVirement,
	"VIREMENT":   models.TransactionVirement,
}

// MapClient converts a raw backend payload into a canonical Client.
// A nil input yields nil; a fake record is never synthesized.
func MapClient(b map[string]any) *models.Client {
	if b == nil {
		return nil
	}
	return &models.Client{
		ID:              idField(b, "id"),
		Nom:             stringField(b, "lastName", "nom"),
		Prenom:          stringField(b, "firstName", "prenom"),
		DateNaissance:   dateField(b, "birthDate", "dateNaissance"),
		Sexe:            stringOr(b, "M", "gender", "sexe"),
		Adresse:         stringField(b, "address", "adresse"),
		Telephone:       stringField(b, "phoneNumber", "telephone"),
		Email:           stringField(b, "email"),
		Nationalite:     stringField(b, "nationality", "nationalite"),
		DateInscription: dateField(b, "createdAt", "dateInscription"),
		Statut:          clientStatus(b),
	}
}

// MapCompte converts a raw backend payload into a canonical Compte.
func MapCompte(b map[string]any) *models.Compte {
	if b == nil {
		return nil
	}
	return &models.Compte{
		ID:           idField(b, "id"),
		NumeroCompte: stringField(b, "accountNumber", "iban", "numeroCompte"),
		Solde:        decimalField(b, "balance", "solde"),
		Type:         compteType(b),
		DateCreation: dateField(b, "createdAt", "dateCreation"),
		ClientID:     compteClientID(b),
		ClientNom:    compteClientNom(b),
		Devise:       stringOr(b, "XOF", "currency", "devise"),
		Statut:       compteStatus(b),
	}
}

// MapTransaction converts a raw backend payload into a canonical Transaction.
func MapTransaction(b map[string]any) *models.Transaction {
	if b == nil {
		return nil
	}
	txType := models.TransactionDepot
	if t, ok := transactionTypeSynonyms[strings.ToUpper(stringField(b, "type"))]; ok {
		txType = t
	}
	return &models.Transaction{
		ID:                idField(b, "id"),
		Type:              txType,
		Montant:           decimalField(b, "amount", "montant"),
		Date:              dateField(b, "timestamp", "date"),
		Description:       stringField(b, "description"),
		CompteSource:      stringField(b, "accountNumber", "sourceAccount", "compteSource"),
		CompteDestination: stringField(b, "targetAccountNumber", "destinationAccount", "compteDestination"),
		Statut:            models.TransactionStatus(strings.ToUpper(stringOr(b, string(models.TransactionSuccess), "status", "statut"))),
	}
}

// MapClients normalizes a list payload of clients.
func MapClients(items []map[string]any) []models.Client {
	out := make([]models.Client, 0, len(items))
	for _, item := range items {
		if c := MapClient(item); c != nil {
			out = append(out, *c)
		}
	}
	return out
}

// MapComptes normalizes a list payload of accounts.
func MapComptes(items []map[string]any) []models.Compte {
	out := make([]models.Compte, 0, len(items))
	for _, item := range items {
		if c := MapCompte(item); c != nil {
			out = append(out, *c)
		}
	}
	return out
}

// MapTransactions normalizes a list payload of transactions.
func MapTransactions(items []map[string]any) []models.Transaction {
	out := make([]models.Transaction, 0, len(items))
	for _, item := range items {
		if t := MapTransaction(item); t != nil {
			out = append(out, *t)
		}
	}
	return out
}

// listEnvelopeKeys are the wrapper keys the backend has been seen using around
// list payloads, tried in order.
var listEnvelopeKeys = []string{"data", "accounts", "clients", "transactions", "items", "content"}

// UnwrapList accepts the response envelopes the backend serves for list
// endpoints: a bare array or an object wrapping the array under a known key.
// Anything else yields an empty list, never an error, so read paths degrade
// instead of failing the view.
func UnwrapList(v any) []map[string]any {
	switch payload := v.(type) {
	case []any:
		items := make([]map[string]any, 0, len(payload))
		for _, entry := range payload {
			if obj, ok := entry.(map[string]any); ok {
				items = append(items, obj)
			}
		}
		return items
	case map[string]any:
		for _, key := range listEnvelopeKeys {
			if inner, ok := payload[key]; ok {
				if _, isList := inner.([]any); isList {
					return UnwrapList(inner)
				}
			}
		}
	}
	return []map[string]any{}
}

// stringField returns the first non-empty string among keys, else "".
func stringField(b map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := b[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// stringOr is stringField with an explicit fallback.
func stringOr(b map[string]any, fallback string, keys ...string) string {
	if s := stringField(b, keys...); s != "" {
		return s
	}
	return fallback
}

// idField renders an id as a string whether the backend sent it as a JSON
// number or a string.
func idField(b map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := b[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// decimalField coerces the first present numeric field, with a zero fallback
// when the value is absent or not numeric.
func decimalField(b map[string]any, keys ...string) decimal.Decimal {
	for _, key := range keys {
		switch v := b[key].(type) {
		case float64:
			return decimal.NewFromFloat(v)
		case string:
			if d, err := decimal.NewFromString(v); err == nil {
				return d
			}
		}
	}
	return decimal.Zero
}

// dateLayouts are the formats the backend mixes: full ISO timestamps with and
// without zone, and date-only strings.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// dateField parses the first present date field; an absent or unparseable
// date defaults to now. An accepted imprecision, not a correctness issue.
func dateField(b map[string]any, keys ...string) time.Time {
	for _, key := range keys {
		s, ok := b[key].(string)
		if !ok || s == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts
			}
		}
	}
	return time.Now()
}

func clientStatus(b map[string]any) models.ClientStatus {
	switch strings.ToUpper(stringField(b, "status")) {
	case "SUSPENDED":
		return models.ClientSuspendu
	case "ACTIVE":
		return models.ClientActif
	}
	if stringField(b, "statut") == string(models.ClientSuspendu) {
		return models.ClientSuspendu
	}
	return models.ClientActif
}

func compteType(b map[string]any) models.CompteType {
	switch strings.ToUpper(stringOr(b, string(models.CompteCourant), "accountType", "type")) {
	case "EPARGNE", "SAVINGS":
		return models.CompteEpargne
	default:
		return models.CompteCourant
	}
}

func compteStatus(b map[string]any) models.CompteStatus {
	switch strings.ToUpper(stringOr(b, string(models.CompteActif), "status", "statut")) {
	case "BLOQUE", "BLOCKED":
		return models.CompteBloque
	default:
		return models.CompteActif
	}
}

func compteClientID(b map[string]any) string {
	if id := idField(b, "clientId"); id != "" {
		return id
	}
	if owner, ok := b["client"].(map[string]any); ok {
		return idField(owner, "id")
	}
	return ""
}

func compteClientNom(b map[string]any) string {
	if name := stringField(b, "ownerName", "clientName", "clientNom"); name != "" {
		return name
	}
	if owner, ok := b["client"].(map[string]any); ok {
		full := strings.TrimSpace(stringField(owner, "firstName") + " " + stringField(owner, "lastName"))
		if full != "" {
			return full
		}
	}
	return "Non renseigné"
}
