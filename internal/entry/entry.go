package entry

import (
	"fmt"
	"time"
)

// Field names as they appear on the wire. Raw edits and validation
// failures both use these names, so the UI can address fields the same
// way the save-trade endpoint does.
const (
	FieldUsername  = "username"
	FieldDate      = "date"
	FieldItem      = "item"
	FieldExpiry    = "expiry"
	FieldLotSize   = "lotsize"
	FieldNumberLot = "numberlot"
	FieldBuyQty    = "buyqty"
	FieldSellQty   = "sellqty"
	FieldSellPrice = "sellprice"
	FieldBuyPrice  = "buyprice"
)

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// TradeEntry is one revision of an in-progress trade ledger entry.
// Numeric fields stay raw strings until normalization so that partial
// user input never blocks editing; BuyQty is the only derived field
// and is kept consistent with LotSize and NumberLot by the Controller.
// Values are immutable: every edit produces a new revision.
type TradeEntry struct {
	Username  string
	TradeDate time.Time
	Item      string
	Expiry    *time.Time
	LotSize   string
	NumberLot string
	BuyQty    float64
	SellQty   string
	SellPrice string
	BuyPrice  string
}

// New returns the initial revision of a trade entry. The trade date
// defaults to the given day; everything else starts blank.
func New(tradeDate time.Time) TradeEntry {
	return TradeEntry{TradeDate: tradeDate}
}

// withField returns a copy of the entry with one raw string field
// replaced. BuyQty is derived and read-only; date fields go through
// withDate instead.
func (e TradeEntry) withField(name, value string) (TradeEntry, error) {
	switch name {
	case FieldUsername:
		e.Username = value
	case FieldItem:
		e.Item = value
	case FieldLotSize:
		e.LotSize = value
	case FieldNumberLot:
		e.NumberLot = value
	case FieldSellQty:
		e.SellQty = value
	case FieldSellPrice:
		e.SellPrice = value
	case FieldBuyPrice:
		e.BuyPrice = value
	case FieldBuyQty:
		return e, fmt.Errorf("%w: %s", ErrReadOnlyField, name)
	case FieldDate, FieldExpiry:
		return e, fmt.Errorf("%w: %s takes a calendar date", ErrUnknownField, name)
	default:
		return e, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return e, nil
}

// withDate returns a copy of the entry with a calendar field replaced.
// A nil value clears the field.
func (e TradeEntry) withDate(name string, d *time.Time) (TradeEntry, error) {
	switch name {
	case FieldDate:
		if d == nil {
			e.TradeDate = time.Time{}
		} else {
			e.TradeDate = *d
		}
	case FieldExpiry:
		e.Expiry = d
	default:
		return e, fmt.Errorf("%w: %s is not a calendar field", ErrUnknownField, name)
	}
	return e, nil
}
