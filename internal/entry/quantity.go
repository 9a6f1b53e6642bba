package entry

import "strconv"

// parseAmount parses a user-entered numeric string. Empty or
// unparsable input counts as zero so that half-typed values never
// block derivation or normalization.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ComputeBuyQuantity derives the tradable quantity from the two lot
// factors. Total: any factor that does not parse is treated as zero.
func ComputeBuyQuantity(lotSize, numberLot string) float64 {
	return parseAmount(lotSize) * parseAmount(numberLot)
}
