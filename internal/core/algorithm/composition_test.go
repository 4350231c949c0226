package algorithm

import (
	"passwordStrengthChecker/internal/core/domain"
	"testing"
)

func TestAnalyzeComposition(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     domain.CompositionFindings
	}{
		{
			name:     "Empty",
			password: "",
			want:     domain.CompositionFindings{},
		},
		{
			name:     "Lower and digits",
			password: "password123",
			want: domain.CompositionFindings{
				HasLower: true, HasDigit: true,
				LowerCount: 8, DigitCount: 3,
				AlphabetSize: 36, DiversityScore: 40,
			},
		},
		{
			name:     "Four ASCII classes",
			password: "aB3$",
			want: domain.CompositionFindings{
				HasLower: true, HasUpper: true, HasDigit: true, HasSymbol: true,
				LowerCount: 1, UpperCount: 1, DigitCount: 1, SymbolCount: 1,
				AlphabetSize: 95, DiversityScore: 80,
			},
		},
		{
			name:     "Non-ASCII letter is unicode only",
			password: "é",
			want: domain.CompositionFindings{
				HasUnicode: true, UnicodeCount: 1,
				AlphabetSize: 100, DiversityScore: 20,
			},
		},
		{
			name:     "All five classes",
			password: "aA1 ü",
			want: domain.CompositionFindings{
				HasLower: true, HasUpper: true, HasDigit: true, HasSymbol: true, HasUnicode: true,
				LowerCount: 1, UpperCount: 1, DigitCount: 1, SymbolCount: 1, UnicodeCount: 1,
				AlphabetSize: 195, DiversityScore: 100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeComposition(tt.password)
			if got != tt.want {
				t.Errorf("AnalyzeComposition(%q) = %+v, want %+v", tt.password, got, tt.want)
			}
		})
	}
}

func TestAnalyzeComposition_AlphabetZeroOnlyWhenEmpty(t *testing.T) {
	for _, password := range []string{"a", " ", "\x00", "漢", "Z9"} {
		if got := AnalyzeComposition(password).AlphabetSize; got == 0 {
			t.Errorf("AlphabetSize(%q) = 0, want > 0", password)
		}
	}
	if got := AnalyzeComposition("").AlphabetSize; got != 0 {
		t.Errorf("AlphabetSize(\"\") = %d, want 0", got)
	}
}

func TestDiversityScore(t *testing.T) {
	want := []int{0, 20, 40, 60, 80, 100}
	for classes, expected := range want {
		if got := DiversityScore(classes); got != expected {
			t.Errorf("DiversityScore(%d) = %d, want %d", classes, got, expected)
		}
	}
}
