package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindPattern(t *testing.T) {
	patterns := MustCompileAll(
		`TAR[İI]H\s*[:]?\s*(\d{2}-\d{2}-\d{4})`,
		`^\s*(\d{2}-\d{2}-\d{4})\s*$`,
	)

	tests := []struct {
		name    string
		text    string
		want    string
		matched bool
	}{
		{
			name:    "labeled date",
			text:    "FİŞ NO: 1\nTARİH: 01-02-2024\nTOPLAM 10,00",
			want:    "01-02-2024",
			matched: true,
		},
		{
			name:    "bare date on its own line",
			text:    "MİGROS\n01-02-2024\nTOPLAM 10,00",
			want:    "01-02-2024",
			matched: true,
		},
		{
			name:    "no match",
			text:    "hiç tarih yok",
			want:    "",
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindPattern(tt.text, patterns)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindPatternFirstMatchWins(t *testing.T) {
	// Both patterns match the text but capture different groups; the first
	// pattern's capture must be returned and the second never consulted.
	patterns := MustCompileAll(
		`NO:\s*(\w+)`,
		`(\d{2}-\d{2}-\d{4})`,
	)

	got, ok := FindPattern("FİŞ NO: A17\n01-02-2024", patterns)
	assert.True(t, ok)
	assert.Equal(t, "A17", got)
}

func TestFindPatternWithoutCaptureGroup(t *testing.T) {
	patterns := MustCompileAll(`GARANT[İI]`)

	got, ok := FindPattern("ÖDEME GARANTİ BANKASI", patterns)
	assert.True(t, ok)
	assert.Equal(t, "GARANTİ", got)
}

func TestFindPatternOr(t *testing.T) {
	patterns := MustCompileAll(`TOPLAM\s*\*?([\d.,]+)`)

	assert.Equal(t, "12,00", FindPatternOr("TOPLAM *12,00", patterns, "Bulunamadı"))
	assert.Equal(t, "Bulunamadı", FindPatternOr("boş metin", patterns, "Bulunamadı"))
}
