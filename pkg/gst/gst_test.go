package gst

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIntraState(t *testing.T) {
	assert.True(t, IntraState("Maharashtra", "maharashtra"))
	assert.True(t, IntraState(" Karnataka ", "Karnataka"))
	assert.False(t, IntraState("Maharashtra", "Gujarat"))
	assert.False(t, IntraState("", ""))
}

func TestSplit(t *testing.T) {
	t.Run("intra-state splits evenly", func(t *testing.T) {
		cgst, sgst, igst := Split(decimal.NewFromInt(1000), decimal.NewFromInt(12), true)
		assert.True(t, cgst.Equal(decimal.NewFromInt(60)), "cgst = %s", cgst)
		assert.True(t, sgst.Equal(decimal.NewFromInt(60)), "sgst = %s", sgst)
		assert.True(t, igst.IsZero())
	})

	t.Run("inter-state is all igst", func(t *testing.T) {
		cgst, sgst, igst := Split(decimal.NewFromInt(1000), decimal.NewFromInt(18), false)
		assert.True(t, cgst.IsZero())
		assert.True(t, sgst.IsZero())
		assert.True(t, igst.Equal(decimal.NewFromInt(180)), "igst = %s", igst)
	})

	t.Run("odd tax conserves total across halves", func(t *testing.T) {
		// 333 * 5% = 16.65; halves are 8.33 + 8.32.
		cgst, sgst, _ := Split(decimal.NewFromInt(333), decimal.NewFromInt(5), true)
		assert.True(t, cgst.Add(sgst).Equal(decimal.NewFromFloat(16.65)),
			"cgst %s + sgst %s must equal the full tax", cgst, sgst)
	})

	t.Run("zero rate", func(t *testing.T) {
		cgst, sgst, igst := Split(decimal.NewFromInt(500), decimal.Zero, true)
		assert.True(t, cgst.IsZero())
		assert.True(t, sgst.IsZero())
		assert.True(t, igst.IsZero())
	})
}
