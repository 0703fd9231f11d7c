// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dirhamflow/dirhamflow/internal/model"
	"github.com/dirhamflow/dirhamflow/internal/service"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#D4A017") // Dirham gold
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// LabelStyle formats field labels in record previews.
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(10)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	CoinIcon    = "🪙"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatTitle formats a title with the coin icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(CoinIcon + " " + title)
}

// RenderRecord renders a parsed transaction as a bordered preview.
func RenderRecord(record model.TransactionRecord) string {
	rows := []struct {
		label string
		value string
	}{
		{"Date", record.Date},
		{"Amount", fmt.Sprintf("%s %.2f", record.Currency, record.Amount)},
		{"Type", string(record.Type)},
		{"Merchant", record.Merchant},
		{"Card", orDash(record.CardLast4)},
		{"Category", string(record.Category)},
	}

	lines := make([]string, 0, len(rows)+1)
	for _, row := range rows {
		lines = append(lines, LabelStyle.Render(row.label)+row.value)
	}
	lines = append(lines, SubtleStyle.Render(record.Raw))

	return BoxStyle.Render(strings.Join(lines, "\n"))
}

// RenderSummary renders a monthly ledger summary.
func RenderSummary(summary *service.MonthlySummary) string {
	lines := []string{
		LabelStyle.Render("Debits") + ErrorStyle.Render(fmt.Sprintf("AED %.2f", summary.TotalDebit)),
		LabelStyle.Render("Credits") + SuccessStyle.Render(fmt.Sprintf("AED %.2f", summary.TotalCredit)),
		LabelStyle.Render("Net") + fmt.Sprintf("AED %.2f", summary.Net),
		LabelStyle.Render("Count") + fmt.Sprintf("%d", summary.Count),
	}

	return BoxStyle.Render(strings.Join(lines, "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
