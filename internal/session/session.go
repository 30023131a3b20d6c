// Package session handles saving/loading users to/from sessions
package session

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/sessions"

	"github.com/example/stockfolio/internal/database"
	"github.com/example/stockfolio/internal/model"
)

var sessionStore *sessions.CookieStore

// InitSessionStorage starts up session storage or crashes the program with an error
func InitSessionStorage() {
	secretKey := os.Getenv("SECRET_KEY")

	if len(secretKey) == 0 {
		fmt.Fprintf(os.Stderr, "No SECRET_KEY variable set!\n")
		os.Exit(1)
	}

	sessionStore = sessions.NewCookieStore([]byte(secretKey))
}

// LoadUserFromSession fills in the user for a request, if one is logged in.
//
// The boolean result is `true` only when a session names a user that still
// exists in the database.
func LoadUserFromSession(conn *database.Conn, request *http.Request, user *model.User) (bool, error) {
	session, sessionError := sessionStore.Get(request, "sessionid")

	if sessionError != nil {
		return false, nil
	}

	if userID, ok := session.Values["userID"].(int); ok {
		row := conn.QueryRow(
			"select id, username, cash from users where id = $1",
			userID,
		)

		if err := row.Scan(&user.ID, &user.Username, &user.Cash); err != nil {
			if err == database.ErrNoRows {
				return false, nil
			}

			return false, err
		}

		return true, nil
	}

	return false, nil
}

func SaveUserInSession(writer http.ResponseWriter, request *http.Request, user *model.User) error {
	session, _ := sessionStore.Get(request, "sessionid")
	session.Values["userID"] = user.ID

	return session.Save(request, writer)
}

func ClearSession(writer http.ResponseWriter, request *http.Request) error {
	session, _ := sessionStore.Get(request, "sessionid")

	for key := range session.Values {
		delete(session.Values, key)
	}

	return session.Save(request, writer)
}
