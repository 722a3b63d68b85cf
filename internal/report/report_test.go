package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/handiism/steam-stats/internal/analysis"
)

func TestLines(t *testing.T) {
	s := analysis.Summary{
		Total:            20,
		Free:             9,
		Paid:             11,
		FreePercent:      45,
		PaidPercent:      55,
		Year:             "2020",
		YearCount:        2,
		HasYear:          true,
		AveragePaidPrice: 15,
	}

	want := []string{
		"O percentual de produtos gratuitos é de: 45.00%",
		"O percentual de produtos pagos é de: 55.00%",
		"Ano com mais jogos lançados: 2020, Total de jogos: 2",
		"Valor médio pago: 15.0",
	}

	got := Lines(s)
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLines_Empty(t *testing.T) {
	got := Lines(analysis.Summary{})

	want := []string{
		"O percentual de produtos gratuitos é de: 0.00%",
		"O percentual de produtos pagos é de: 0.00%",
		"Ano com mais jogos lançados: None, Total de jogos: 0",
		"Valor médio pago: 0.0",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, analysis.Summary{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 4 {
		t.Errorf("Write produced %d lines, want 4", got)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0.0"},
		{15, "15.0"},
		{15.5, "15.5"},
		{9.99, "9.99"},
		{1.67, "1.67"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatPrice(tt.input); got != tt.want {
				t.Errorf("FormatPrice(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStyled_ContainsValues(t *testing.T) {
	out := Styled(analysis.Summary{
		Total:       3,
		FreePercent: 33.33,
		PaidPercent: 66.67,
		Year:        "2019",
		YearCount:   2,
		HasYear:     true,
	})

	for _, want := range []string{"33.33%", "66.67%", "2019", "3 games"} {
		if !strings.Contains(out, want) {
			t.Errorf("styled report missing %q", want)
		}
	}
}
