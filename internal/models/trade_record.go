package models

import "gorm.io/gorm"

// TradeRecord is a submitted trade entry as persisted by the local
// ledger sink. Field shapes mirror the normalized payload: dates are
// YYYY-MM-DD strings, numerics are floats.
type TradeRecord struct {
	gorm.Model
	Username  string  `json:"username"`
	TradeDate string  `json:"date"`
	Item      string  `json:"item"`
	Expiry    *string `json:"expiry"`
	LotSize   float64 `json:"lotsize"`
	NumberLot float64 `json:"numberlot"`
	BuyQty    float64 `json:"buyqty"`
	SellQty   float64 `json:"sellqty"`
	SellPrice float64 `json:"sellprice"`
	BuyPrice  float64 `json:"buyprice"`
}
