package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBuyQuantity(t *testing.T) {
	testCases := []struct {
		name      string
		lotSize   string
		numberLot string
		expected  float64
	}{
		{name: "Whole numbers", lotSize: "10", numberLot: "3", expected: 30},
		{name: "Fractional lot size", lotSize: "0.5", numberLot: "4", expected: 2},
		{name: "Both empty", lotSize: "", numberLot: "", expected: 0},
		{name: "One factor empty", lotSize: "10", numberLot: "", expected: 0},
		{name: "Unparsable factor treated as zero", lotSize: "abc", numberLot: "3", expected: 0},
		{name: "Zero is a valid factor", lotSize: "0", numberLot: "3", expected: 0},
		{name: "Negative values pass through", lotSize: "-2", numberLot: "3", expected: -6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ComputeBuyQuantity(tc.lotSize, tc.numberLot))
		})
	}
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 12.5, parseAmount("12.5"))
	assert.Equal(t, 0.0, parseAmount(""))
	assert.Equal(t, 0.0, parseAmount("not a number"))
}
