package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/semreerol/Receipt-Scanner/internal/models"
)

func TestLineItems(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []models.LineItem
	}{
		{
			name: "header then items then footer",
			lines: []string{
				"TARİH: 01-01-2024",
				"EKMEK 5,00",
				"SÜT *3,50",
				"TOPLAM 8,50",
			},
			want: []models.LineItem{
				{Description: "EKMEK", Price: "5,00"},
				{Description: "SÜT", Price: "3,50"},
			},
		},
		{
			name: "no header keyword means no body",
			lines: []string{
				"EKMEK 5,00",
				"SÜT 3,50",
			},
			want: nil,
		},
		{
			name: "scanning stops permanently at the footer",
			lines: []string{
				"FİŞ NO: 12",
				"PEYNİR 42,00",
				"ARA TOPLAM 42,00",
				"ZEYTİN 30,00",
			},
			want: []models.LineItem{
				{Description: "PEYNİR", Price: "42,00"},
			},
		},
		{
			name: "tax and discount adjustment lines are discarded",
			lines: []string{
				"ÜRÜN ADI",
				"EKMEK 5,00",
				"KDV %8 0,40",
				"İNDİRİM 1,00",
				"TOPLAM 4,40",
			},
			want: []models.LineItem{
				{Description: "EKMEK", Price: "5,00"},
			},
		},
		{
			name: "quantity prefix is stripped",
			lines: []string{
				"ADİSYON NO: 3",
				"2 x KÖFTE 90,00",
				"TOPLAM 90,00",
			},
			want: []models.LineItem{
				{Description: "KÖFTE", Price: "90,00"},
			},
		},
		{
			name: "short fragments are discarded",
			lines: []string{
				"SAAT 14:30",
				"SU 2,50",
				"AYRAN 10,00",
				"NAKİT 12,50",
			},
			want: []models.LineItem{
				{Description: "AYRAN", Price: "10,00"},
			},
		},
		{
			name: "non-item body lines are skipped",
			lines: []string{
				"TARİH: 01-01-2024",
				"TEŞEKKÜRLER",
				"EKMEK 5,00",
				"TOPLAM 5,00",
			},
			want: []models.LineItem{
				{Description: "EKMEK", Price: "5,00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LineItems(tt.lines))
		})
	}
}

func TestFormatLineItems(t *testing.T) {
	items := []models.LineItem{
		{Description: "EKMEK", Price: "5,00"},
		{Description: "SÜT", Price: "3,50"},
	}
	assert.Equal(t, "EKMEK | Fiyat: 5,00\nSÜT | Fiyat: 3,50", FormatLineItems(items))
}

func TestFormatLineItemsEmpty(t *testing.T) {
	assert.Equal(t, NoItemsFound, FormatLineItems(nil))
}
