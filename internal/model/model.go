package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a user in the database
type User struct {
	ID       int
	Username string
	Cash     decimal.Decimal
}

// Quote represents a live price for a stock, as reported by the provider
type Quote struct {
	Symbol string
	Name   string
	Price  decimal.Decimal
}

// Holding represents the shares of one stock held by a user
type Holding struct {
	Symbol   string
	Quantity int
}

// Transaction kinds recorded in history rows.
const (
	KindPurchase = "PURCHASE"
	KindSale     = "SALE"
)

// Transaction represents one history entry for a completed trade
type Transaction struct {
	ID     int
	Symbol string
	Price  decimal.Decimal
	Shares int
	Kind   string
	Time   time.Time
}
