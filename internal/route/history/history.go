// Package history defines the route listing past transactions
package history

import (
	"net/http"

	"github.com/example/stockfolio/internal/database"
	"github.com/example/stockfolio/internal/ledger"
	"github.com/example/stockfolio/internal/model"
	"github.com/example/stockfolio/internal/route/util"
	"github.com/example/stockfolio/internal/session"
	"github.com/example/stockfolio/internal/template"
)

type HistoryPageData struct {
	User            model.User
	TransactionList []model.Transaction
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

func HandleHistory(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	data := HistoryPageData{}

	if !loadUser(conn, writer, request, &data.User) {
		return
	}

	if err := ledger.History(conn, data.User.ID, &data.TransactionList); err != nil {
		util.RespondInternalServerError(writer, err)

		return
	}

	template.Render(template.History, writer, data)
}
