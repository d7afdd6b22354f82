package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// GetFiscalYear returns the Indian fiscal year string for a given date.
// Indian fiscal year runs April to March.
// Jan 2026 → "25-26", May 2026 → "26-27"
func GetFiscalYear(t time.Time) string {
	startYear := t.Year()
	if t.Month() < time.April {
		startYear--
	}
	return fmt.Sprintf("%02d-%02d", startYear%100, (startYear+1)%100)
}

func formatQuoteNumber(orgRef, fiscalYear string, sequence int) string {
	return fmt.Sprintf("QT-%s-%s-%03d", orgRef, fiscalYear, sequence)
}

// GenerateQuoteNumber creates the next quote reference number.
// Format: QT-{org}-{fiscal_year}-{sequence}
// - org: upper-cased organization (GEN when empty)
// - fiscal_year: Indian fiscal year (Apr-Mar), e.g., "25-26"
// - sequence: 3-digit zero-padded, per organization per fiscal year
func GenerateQuoteNumber(app core.App, organization string, now time.Time) (string, error) {
	orgRef := strings.ToUpper(strings.TrimSpace(organization))
	if orgRef == "" {
		orgRef = "GEN"
	}
	fiscalYear := GetFiscalYear(now)
	prefix := fmt.Sprintf("QT-%s-%s-", orgRef, fiscalYear)

	existing, err := app.FindRecordsByFilter(
		"quotes",
		"reference_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		return "", fmt.Errorf("count quotes for %s: %w", prefix, err)
	}

	return formatQuoteNumber(orgRef, fiscalYear, len(existing)+1), nil
}
