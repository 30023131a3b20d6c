// Package trade defines routes for quoting, buying, and selling stocks
package trade

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/example/stockfolio/internal/database"
	"github.com/example/stockfolio/internal/ledger"
	"github.com/example/stockfolio/internal/model"
	"github.com/example/stockfolio/internal/quote"
	"github.com/example/stockfolio/internal/route/util"
	"github.com/example/stockfolio/internal/session"
	"github.com/example/stockfolio/internal/template"
)

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

// normalizeSymbol upper-cases a submitted ticker symbol.
func normalizeSymbol(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

var errBadShares = errors.New("shares must be a positive whole number")

// parseShares parses the shares form field, accepting positive integers only.
func parseShares(value string) (int, error) {
	shares, err := strconv.Atoi(strings.TrimSpace(value))

	if err != nil || shares <= 0 {
		return 0, errBadShares
	}

	return shares, nil
}

// respondQuoteError maps quote provider failures onto responses.
func respondQuoteError(writer http.ResponseWriter, err error) {
	if errors.Is(err, quote.ErrUnknownSymbol) {
		util.RespondValidationError(writer, "invalid symbol")
	} else if errors.Is(err, quote.ErrUnavailable) {
		util.RespondApology(writer, http.StatusInternalServerError, "quote provider unavailable")
	} else {
		util.RespondInternalServerError(writer, err)
	}
}

type QuotePageData struct {
	User model.User
}

type QuotedPageData struct {
	User  model.User
	Quote model.Quote
}

func HandleViewQuoteForm(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	data := QuotePageData{}

	if !loadUser(conn, writer, request, &data.User) {
		return
	}

	template.Render(template.Quote, writer, data)
}

func HandleQuote(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	data := QuotedPageData{}

	if !loadUser(conn, writer, request, &data.User) {
		return
	}

	request.ParseForm()
	symbol := normalizeSymbol(request.Form.Get("symbol"))

	if len(symbol) == 0 {
		util.RespondValidationError(writer, "must provide symbol")

		return
	}

	stockQuote, err := quote.Lookup(symbol)

	if err != nil {
		respondQuoteError(writer, err)

		return
	}

	data.Quote = stockQuote
	template.Render(template.Quoted, writer, data)
}

type tradeForm struct {
	symbol string
	shares int
}

// loadTradeForm validates the symbol and shares fields shared by the buy
// and sell forms.
func loadTradeForm(writer http.ResponseWriter, request *http.Request, form *tradeForm) bool {
	request.ParseForm()
	form.symbol = normalizeSymbol(request.Form.Get("symbol"))

	if len(form.symbol) == 0 {
		util.RespondValidationError(writer, "must provide symbol")

		return false
	}

	shares, err := parseShares(request.Form.Get("shares"))

	if err != nil {
		util.RespondValidationError(writer, err.Error())

		return false
	}

	form.shares = shares

	return true
}

type BoughtPageData struct {
	User   model.User
	Quote  model.Quote
	Shares int
}

func HandleViewBuyForm(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	data := QuotePageData{}

	if !loadUser(conn, writer, request, &data.User) {
		return
	}

	template.Render(template.Buy, writer, data)
}

func HandleBuy(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	data := BoughtPageData{}

	if !loadUser(conn, writer, request, &data.User) {
		return
	}

	var form tradeForm

	if !loadTradeForm(writer, request, &form) {
		return
	}

	stockQuote, err := quote.Lookup(form.symbol)

	if err != nil {
		respondQuoteError(writer, err)

		return
	}

	if err := ledger.Buy(conn, data.User.ID, stockQuote, form.shares); err != nil {
		if errors.Is(err, ledger.ErrInsufficientFunds) {
			util.RespondValidationError(writer, err.Error())
		} else {
			util.RespondInternalServerError(writer, err)
		}

		return
	}

	data.Quote = stockQuote
	data.Shares = form.shares
	template.Render(template.Bought, writer, data)
}

type SellPageData struct {
	User        model.User
	HoldingList []model.Holding
}

func HandleViewSellForm(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	data := SellPageData{}

	if !loadUser(conn, writer, request, &data.User) {
		return
	}

	if err := ledger.Holdings(conn, data.User.ID, &data.HoldingList); err != nil {
		util.RespondInternalServerError(writer, err)

		return
	}

	template.Render(template.Sell, writer, data)
}

func HandleSell(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	var user model.User

	if !loadUser(conn, writer, request, &user) {
		return
	}

	var form tradeForm

	if !loadTradeForm(writer, request, &form) {
		return
	}

	stockQuote, err := quote.Lookup(form.symbol)

	if err != nil {
		respondQuoteError(writer, err)

		return
	}

	if err := ledger.Sell(conn, user.ID, stockQuote, form.shares); err != nil {
		if errors.Is(err, ledger.ErrInsufficientShares) {
			util.RespondValidationError(writer, err.Error())
		} else {
			util.RespondInternalServerError(writer, err)
		}

		return
	}

	http.Redirect(writer, request, "/", http.StatusFound)
}
