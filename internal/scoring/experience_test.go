package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxYearsOfExperience(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  float64
		found bool
	}{
		{"single mention", "5 years of backend work", 5, true},
		{"abbreviated", "3 yrs in DevOps", 3, true},
		{"plus suffix", "10+ years leading teams", 10, true},
		{"decimal", "2.5 years with Go", 2.5, true},
		{"case insensitive", "7 YEARS experience", 7, true},
		{"maximum across mentions", "2 years at Acme, 6 years total, 1 yr freelancing", 6, true},
		{"no mention", "self-taught engineer", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MaxYearsOfExperience(tt.text)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
