package entry

// Payload is the canonical, transport-ready representation of a trade
// entry: primitive numbers and YYYY-MM-DD strings only. This is the
// exact shape the save-trade endpoint expects.
type Payload struct {
	Username  string  `json:"username"`
	Date      string  `json:"date"`
	Item      string  `json:"item"`
	Expiry    *string `json:"expiry"`
	LotSize   float64 `json:"lotsize"`
	NumberLot float64 `json:"numberlot"`
	BuyQty    float64 `json:"buyqty"`
	SellQty   float64 `json:"sellqty"`
	SellPrice float64 `json:"sellprice"`
	BuyPrice  float64 `json:"buyprice"`
}

// Normalize casts a validated entry into its wire shape. It is total:
// numeric strings that fail to parse become zero (deliberate leniency,
// matching the derivation rules), blank optional sell fields become
// zero, and a nil expiry serializes as JSON null.
func Normalize(e TradeEntry) Payload {
	var expiry *string
	if e.Expiry != nil {
		s := e.Expiry.Format(DateLayout)
		expiry = &s
	}

	return Payload{
		Username:  e.Username,
		Date:      e.TradeDate.Format(DateLayout),
		Item:      e.Item,
		Expiry:    expiry,
		LotSize:   parseAmount(e.LotSize),
		NumberLot: parseAmount(e.NumberLot),
		BuyQty:    e.BuyQty,
		SellQty:   parseAmount(e.SellQty),
		SellPrice: parseAmount(e.SellPrice),
		BuyPrice:  parseAmount(e.BuyPrice),
	}
}
