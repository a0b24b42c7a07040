package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyName(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{
			name:  "empty text",
			text:  "",
			found: false,
		},
		{
			name:  "whitespace only",
			text:  "  \n\t  ",
			found: false,
		},
		{
			name:  "single line",
			text:  "SHELL PETROL A.Ş.",
			want:  "SHELL PETROL A.Ş.",
			found: true,
		},
		{
			name:  "two lines are joined",
			text:  "MİGROS TİCARET\nA.Ş.",
			want:  "MİGROS TİCARET A.Ş.",
			found: true,
		},
		{
			name:  "blank second line is skipped",
			text:  "MİGROS TİCARET\n\n01-02-2024",
			want:  "MİGROS TİCARET",
			found: true,
		},
		{
			name:  "date on line two is appended as-is",
			text:  "KÖFTECİ YUSUF\n01-02-2024",
			want:  "KÖFTECİ YUSUF 01-02-2024",
			found: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CompanyName(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
