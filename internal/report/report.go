// Package report formats analysis results for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/steam-stats/internal/analysis"
)

// NoYear is printed in place of the year when no record has one.
const NoYear = "None"

// Styles for the styled report
var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

type line struct {
	label string
	value string
}

func lines(s analysis.Summary) []line {
	year := NoYear
	if s.HasYear {
		year = s.Year
	}
	return []line{
		{"O percentual de produtos gratuitos é de: ", fmt.Sprintf("%.2f%%", s.FreePercent)},
		{"O percentual de produtos pagos é de: ", fmt.Sprintf("%.2f%%", s.PaidPercent)},
		{"Ano com mais jogos lançados: ", fmt.Sprintf("%s, Total de jogos: %d", year, s.YearCount)},
		{"Valor médio pago: ", FormatPrice(s.AveragePaidPrice)},
	}
}

// Lines returns the report as plain text lines, one per statistic.
func Lines(s analysis.Summary) []string {
	var out []string
	for _, l := range lines(s) {
		out = append(out, l.label+l.value)
	}
	return out
}

// Write prints the plain report to w, one statistic per line.
func Write(w io.Writer, s analysis.Summary) error {
	_, err := io.WriteString(w, strings.Join(Lines(s), "\n")+"\n")
	return err
}

// Styled renders the report inside a bordered box.
func Styled(s analysis.Summary) string {
	var b strings.Builder
	for i, l := range lines(s) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render(l.label))
		b.WriteString(valueStyle.Render(l.value))
	}
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"%d games | %d free | %d paid | %d without year",
		s.Total, s.Free, s.Paid, s.ExcludedYears,
	)))
	return boxStyle.Render(b.String())
}

// FormatPrice formats a price with as many decimals as needed, but at
// least one: 15 → "15.0", 15.5 → "15.5", 9.99 → "9.99".
func FormatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
