// Package portfolio defines the index route showing positions and net worth
package portfolio

import (
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/example/stockfolio/internal/database"
	"github.com/example/stockfolio/internal/ledger"
	"github.com/example/stockfolio/internal/model"
	"github.com/example/stockfolio/internal/quote"
	"github.com/example/stockfolio/internal/route/util"
	"github.com/example/stockfolio/internal/session"
	"github.com/example/stockfolio/internal/template"
)

// Position is a holding priced at the current quote.
type Position struct {
	Symbol   string
	Quantity int
	Price    decimal.Decimal
	Value    decimal.Decimal
}

type PortfolioPageData struct {
	User         model.User
	PositionList []Position
	StockTotal   decimal.Decimal
	NetWorth     decimal.Decimal
}

func loadUser(conn *database.Conn, writer http.ResponseWriter, request *http.Request, user *model.User) bool {
	found, err := session.LoadUserFromSession(conn, request, user)

	if err != nil {
		util.RespondInternalServerError(writer, err)

		return false
	}

	if !found {
		http.Redirect(writer, request, "/login", http.StatusFound)

		return false
	}

	return true
}

// buildPositions prices each holding with one lookup per symbol and sums
// the position values.
//
// Any lookup failure fails the whole list, so the page never shows a
// partial or stale net worth.
func buildPositions(
	holdingList []model.Holding,
	lookup func(symbol string) (model.Quote, error),
) ([]Position, decimal.Decimal, error) {
	positionList := make([]Position, 0, len(holdingList))
	stockTotal := decimal.Zero

	for _, holding := range holdingList {
		stockQuote, err := lookup(holding.Symbol)

		if err != nil {
			return nil, decimal.Zero, err
		}

		value := stockQuote.Price.Mul(decimal.NewFromInt(int64(holding.Quantity)))
		positionList = append(positionList, Position{
			Symbol:   holding.Symbol,
			Quantity: holding.Quantity,
			Price:    stockQuote.Price,
			Value:    value,
		})
		stockTotal = stockTotal.Add(value)
	}

	return positionList, stockTotal, nil
}

// HandlePortfolio shows the stocks and cash a user has.
func HandlePortfolio(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	data := PortfolioPageData{}

	if !loadUser(conn, writer, request, &data.User) {
		return
	}

	var holdingList []model.Holding

	if err := ledger.Holdings(conn, data.User.ID, &holdingList); err != nil {
		util.RespondInternalServerError(writer, err)

		return
	}

	positionList, stockTotal, err := buildPositions(holdingList, quote.Lookup)

	if err != nil {
		if errors.Is(err, quote.ErrUnavailable) || errors.Is(err, quote.ErrUnknownSymbol) {
			util.RespondApology(writer, http.StatusInternalServerError, "quote provider unavailable")
		} else {
			util.RespondInternalServerError(writer, err)
		}

		return
	}

	data.PositionList = positionList
	data.StockTotal = stockTotal
	data.NetWorth = data.User.Cash.Add(stockTotal)
	template.Render(template.Portfolio, writer, data)
}
