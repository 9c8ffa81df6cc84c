// Package statement extracts a usable statement from the backend's
// plain-text releve format. The statement endpoint is documented as JSON but
// currently answers with a formatted text block; this parser is the degraded
// fallback path, never the primary contract.
package statement

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/egabank/egabank_portal/internal/backend"
	"github.com/egabank/egabank_portal/internal/models"
	"github.com/shopspring/decimal"
)

// Summary is what can be recovered from a text statement. Fields stay at
// their zero values when the text carries nothing recognizable.
type Summary struct {
	Titulaire    string
	NumeroCompte string
	SoldeFinal   decimal.Decimal
	Transactions []models.Transaction
}

var (
	// "Solde: 12345.00" or "Solde actuel: 12 345,00"
	soldePattern = regexp.MustCompile(`(?i)\bSolde(?:\s+actuel)?\s*:\s*(-?[\d\s,.]*\d)`)
	// "Titulaire: Jean Dupont"
	titulairePattern = regexp.MustCompile(`(?i)\bTitulaire\s*:\s*(.+)`)
	// "Compte: EGA0001 (COURANT)"
	comptePattern = regexp.MustCompile(`(?i)\bCompte\s*:\s*(\S+)`)
	// "2024-03-01T10:15 | DEPOT | 1000 | Dépôt initial" — the backend pads
	// the columns with %-20s style formatting, so cells are trimmed.
	rowPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}\S*)\s*\|\s*(\S+)\s*\|\s*(-?[\d.,]+)\s*\|\s*(.*)$`)
)

// Parse scans a plain-text statement body. Unrecognizable input yields a
// zeroed summary, never an error: the caller degrades, it does not fail.
func Parse(text string) *Summary {
	summary := &Summary{Transactions: []models.Transaction{}}

	if m := titulairePattern.FindStringSubmatch(text); m != nil {
		summary.Titulaire = strings.TrimSpace(m[1])
	}
	if m := comptePattern.FindStringSubmatch(text); m != nil {
		summary.NumeroCompte = strings.TrimSpace(m[1])
	}
	if m := soldePattern.FindStringSubmatch(text); m != nil {
		if solde, err := parseAmount(m[1]); err == nil {
			summary.SoldeFinal = solde
		}
	}

	for _, line := range strings.Split(text, "\n") {
		m := rowPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		montant, err := parseAmount(m[3])
		if err != nil {
			continue
		}
		// Rebuild a raw payload and reuse the normalizer so the type
		// synonyms collapse the same way as on the JSON path.
		tx := backend.MapTransaction(map[string]any{
			"type":        m[2],
			"amount":      montant.InexactFloat64(),
			"timestamp":   m[1],
			"description": strings.TrimSpace(m[4]),
		})
		summary.Transactions = append(summary.Transactions, *tx)
	}

	return summary
}

// parseAmount converts "12 345,00" or "1,234.56" to a decimal.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	// French decimal comma, but only when no period is present; otherwise
	// commas are thousands separators.
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		if parts := strings.Split(s, ","); len(parts) == 2 && len(parts[1]) <= 2 {
			s = parts[0] + "." + parts[1]
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(s)
}
