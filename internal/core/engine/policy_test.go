package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide_AffordabilityGate(t *testing.T) {
	// EMI above half the income rejects before any tier applies
	d := Decide(VariantLenient, 100, 10, 26000, 50000)
	assert.False(t, d.Approved)
	assert.Equal(t, ReasonEMITooHigh, d.Reason)
	assert.Equal(t, 10.0, d.CorrectedRate)

	// Exactly half passes the gate
	d = Decide(VariantLenient, 100, 10, 25000, 50000)
	assert.True(t, d.Approved)
}

func TestDecide_Tiers(t *testing.T) {
	tests := []struct {
		name         string
		variant      Variant
		score        int
		rate         float64
		wantApproved bool
		wantRate     float64
	}{
		{"top tier unchanged", VariantLenient, 55, 5, true, 5},
		{"top tier boundary 51", VariantStrict, 51, 5, true, 5},
		{"mid tier lenient corrects to 12", VariantLenient, 40, 5, true, 12},
		{"mid tier lenient keeps compliant rate", VariantLenient, 40, 13, true, 13},
		{"mid tier strict rejects low rate", VariantStrict, 40, 5, false, 5},
		{"mid tier strict accepts compliant rate", VariantStrict, 40, 12, true, 12},
		{"mid tier boundary 50 uses 12 floor", VariantLenient, 50, 5, true, 12},
		{"low tier lenient corrects to 16", VariantLenient, 20, 10, true, 16},
		{"low tier strict rejects low rate", VariantStrict, 20, 10, false, 10},
		{"low tier strict accepts compliant rate", VariantStrict, 20, 16, true, 16},
		{"low tier boundary 11", VariantLenient, 11, 5, true, 16},
		{"bottom tier rejects", VariantLenient, 10, 20, false, 20},
		{"bottom tier rejects regardless of variant", VariantStrict, 5, 20, false, 20},
		{"zero score rejects", VariantLenient, 0, 20, false, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.variant, tt.score, tt.rate, 1000, 50000)
			assert.Equal(t, tt.wantApproved, d.Approved)
			assert.Equal(t, tt.wantRate, d.CorrectedRate)
			if tt.wantApproved {
				assert.Empty(t, d.Reason)
			} else {
				assert.NotEmpty(t, d.Reason)
			}
		})
	}
}
