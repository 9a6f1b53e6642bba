package entry

// requiredFields is the submit gate, in reporting order. Validation
// stops at the first empty field so the user always sees a single,
// deterministic message.
var requiredFields = []string{
	FieldUsername,
	FieldDate,
	FieldItem,
	FieldExpiry,
	FieldLotSize,
	FieldNumberLot,
	FieldBuyQty,
	FieldBuyPrice,
}

// Validate checks the entry for completeness. It returns nil when all
// required fields are present, or a *MissingFieldError naming the
// first one that is not. A field is missing when its string is empty
// or its date is unset; numeric zero is a valid value, so the derived
// BuyQty can only ever pass.
func Validate(e TradeEntry) error {
	for _, name := range requiredFields {
		if fieldMissing(e, name) {
			return &MissingFieldError{Field: name}
		}
	}
	return nil
}

func fieldMissing(e TradeEntry, name string) bool {
	switch name {
	case FieldUsername:
		return e.Username == ""
	case FieldDate:
		return e.TradeDate.IsZero()
	case FieldItem:
		return e.Item == ""
	case FieldExpiry:
		return e.Expiry == nil
	case FieldLotSize:
		return e.LotSize == ""
	case FieldNumberLot:
		return e.NumberLot == ""
	case FieldBuyQty:
		// Derived numeric, present by construction.
		return false
	case FieldBuyPrice:
		return e.BuyPrice == ""
	}
	return false
}
