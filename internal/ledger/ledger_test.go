package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestApplyBuy(t *testing.T) {
	testCases := []struct {
		name      string
		cash      string
		held      int
		price     string
		shares    int
		wantCash  string
		wantHeld  int
		wantError error
	}{
		{
			name:     "First purchase of a symbol",
			cash:     "10000.00",
			held:     0,
			price:    "20.00",
			shares:   5,
			wantCash: "9900.00",
			wantHeld: 5,
		},
		{
			name:     "Purchase adds to an existing holding",
			cash:     "9900.00",
			held:     5,
			price:    "20.00",
			shares:   3,
			wantCash: "9840.00",
			wantHeld: 8,
		},
		{
			name:     "Spending the entire cash balance is allowed",
			cash:     "100.00",
			held:     0,
			price:    "25.00",
			shares:   4,
			wantCash: "0.00",
			wantHeld: 4,
		},
		{
			name:     "Fractional prices subtract exactly",
			cash:     "10.00",
			held:     0,
			price:    "3.33",
			shares:   3,
			wantCash: "0.01",
			wantHeld: 3,
		},
		{
			name:      "Cost one cent over cash is rejected",
			cash:      "99.99",
			held:      2,
			price:     "25.00",
			shares:    4,
			wantCash:  "99.99",
			wantHeld:  2,
			wantError: ErrInsufficientFunds,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			newCash, newHeld, err := applyBuy(
				money(testCase.cash),
				testCase.held,
				money(testCase.price),
				testCase.shares,
			)

			if !errors.Is(err, testCase.wantError) {
				t.Fatalf("applyBuy() error = %v, want %v", err, testCase.wantError)
			}

			if !newCash.Equal(money(testCase.wantCash)) {
				t.Errorf("applyBuy() cash = %s, want %s", newCash, testCase.wantCash)
			}

			if newHeld != testCase.wantHeld {
				t.Errorf("applyBuy() held = %d, want %d", newHeld, testCase.wantHeld)
			}
		})
	}
}

func TestApplySell(t *testing.T) {
	testCases := []struct {
		name      string
		cash      string
		held      int
		price     string
		shares    int
		wantCash  string
		wantHeld  int
		wantError error
	}{
		{
			name:     "Partial sale keeps the remaining shares",
			cash:     "100.00",
			held:     10,
			price:    "20.00",
			shares:   4,
			wantCash: "180.00",
			wantHeld: 6,
		},
		{
			name:     "Selling every share empties the holding",
			cash:     "9900.00",
			held:     5,
			price:    "25.00",
			shares:   5,
			wantCash: "10025.00",
			wantHeld: 0,
		},
		{
			name:      "Selling with no holding is rejected",
			cash:      "100.00",
			held:      0,
			price:     "20.00",
			shares:    1,
			wantCash:  "100.00",
			wantHeld:  0,
			wantError: ErrInsufficientShares,
		},
		{
			name:      "Selling more shares than held is rejected",
			cash:      "100.00",
			held:      3,
			price:     "20.00",
			shares:    4,
			wantCash:  "100.00",
			wantHeld:  3,
			wantError: ErrInsufficientShares,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			newCash, newHeld, err := applySell(
				money(testCase.cash),
				testCase.held,
				money(testCase.price),
				testCase.shares,
			)

			if !errors.Is(err, testCase.wantError) {
				t.Fatalf("applySell() error = %v, want %v", err, testCase.wantError)
			}

			if !newCash.Equal(money(testCase.wantCash)) {
				t.Errorf("applySell() cash = %s, want %s", newCash, testCase.wantCash)
			}

			if newHeld != testCase.wantHeld {
				t.Errorf("applySell() held = %d, want %d", newHeld, testCase.wantHeld)
			}
		})
	}
}

// Buying and then selling the same shares at a stable price must return
// the cash balance exactly to where it started, with no holding left over.
func TestBuyThenSellRoundTrip(t *testing.T) {
	initialCash := money("10000.00")
	price := money("123.45")

	cashAfterBuy, heldAfterBuy, err := applyBuy(initialCash, 0, price, 10)

	if err != nil {
		t.Fatalf("applyBuy() error = %v", err)
	}

	finalCash, finalHeld, err := applySell(cashAfterBuy, heldAfterBuy, price, 10)

	if err != nil {
		t.Fatalf("applySell() error = %v", err)
	}

	if !finalCash.Equal(initialCash) {
		t.Errorf("round trip cash = %s, want %s", finalCash, initialCash)
	}

	if finalHeld != 0 {
		t.Errorf("round trip held = %d, want 0", finalHeld)
	}
}
