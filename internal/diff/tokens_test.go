package diff_test

import (
	"strings"
	"testing"

	"github.com/RobertKozak/mr-comment/internal/diff"
	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"single char rounds up", "x", 1},
		{"exact multiple", strings.Repeat("x", 7), 2},
		{"rounds up", strings.Repeat("x", 8), 3},
		{"longer text", strings.Repeat("x", 350), 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, diff.EstimateTokens(tt.text))
		})
	}
}
