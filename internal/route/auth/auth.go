// Package auth defines routes for registration, login, and logout
package auth

import (
	"errors"
	"net/http"

	"github.com/example/stockfolio/internal/database"
	"github.com/example/stockfolio/internal/ledger"
	"github.com/example/stockfolio/internal/model"
	"github.com/example/stockfolio/internal/route/util"
	"github.com/example/stockfolio/internal/session"
	"github.com/example/stockfolio/internal/template"
)

type LoginPageData struct {
	ErrorMessage string
}

func HandleViewLoginForm(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	template.Render(template.Login, writer, LoginPageData{})
}

func HandleLogin(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	request.ParseForm()
	username := request.Form.Get("username")
	password := request.Form.Get("password")

	if len(username) == 0 {
		util.RespondForbidden(writer, "must provide username")

		return
	}

	if len(password) == 0 {
		util.RespondForbidden(writer, "must provide password")

		return
	}

	userID, err := ledger.Authenticate(conn, username, password)

	if err != nil {
		if errors.Is(err, ledger.ErrInvalidCredentials) {
			util.RespondForbidden(writer, err.Error())
		} else {
			util.RespondInternalServerError(writer, err)
		}

		return
	}

	user := model.User{ID: userID, Username: username}

	if err := session.SaveUserInSession(writer, request, &user); err != nil {
		util.RespondInternalServerError(writer, err)

		return
	}

	http.Redirect(writer, request, "/", http.StatusFound)
}

func HandleLogout(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	session.ClearSession(writer, request)
	http.Redirect(writer, request, "/login", http.StatusFound)
}

func HandleViewRegisterForm(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	template.Render(template.Register, writer, nil)
}

// validateRegistration returns a message describing the first problem with
// the registration form, or an empty string when the form is fine.
func validateRegistration(username string, password string, confirmation string) string {
	if len(username) == 0 {
		return "must provide username"
	}

	if len(password) == 0 {
		return "must provide password"
	}

	if password != confirmation {
		return "password does not match confirmation"
	}

	return ""
}

func HandleRegister(conn *database.Conn, writer http.ResponseWriter, request *http.Request) {
	request.ParseForm()
	username := request.Form.Get("username")
	password := request.Form.Get("password")
	confirmation := request.Form.Get("confirmation")

	if message := validateRegistration(username, password, confirmation); len(message) > 0 {
		util.RespondForbidden(writer, message)

		return
	}

	if _, err := ledger.Register(conn, username, password); err != nil {
		if errors.Is(err, ledger.ErrDuplicateUsername) {
			util.RespondForbidden(writer, err.Error())
		} else {
			util.RespondInternalServerError(writer, err)
		}

		return
	}

	http.Redirect(writer, request, "/login", http.StatusFound)
}
