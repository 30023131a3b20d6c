package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/example/stockfolio/internal/database"
	"github.com/example/stockfolio/internal/env"
	"github.com/example/stockfolio/internal/quote"
	"github.com/example/stockfolio/internal/route/auth"
	"github.com/example/stockfolio/internal/route/history"
	"github.com/example/stockfolio/internal/route/portfolio"
	"github.com/example/stockfolio/internal/route/trade"
	"github.com/example/stockfolio/internal/session"
	"github.com/example/stockfolio/internal/template"
)

type connHandler func(*database.Conn, http.ResponseWriter, *http.Request)

func withConn(conn *database.Conn, handler connHandler) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		handler(conn, writer, request)
	}
}

// noCache stops browsers from replaying stale balances after a trade.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		writer.Header().Set("Expires", "0")
		writer.Header().Set("Pragma", "no-cache")
		next.ServeHTTP(writer, request)
	})
}

func main() {
	env.LoadEnvironmentVariables()
	session.InitSessionStorage()
	template.Init()
	quote.Init()

	conn, err := database.Connect()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %s\n", err)
		os.Exit(1)
	}

	defer conn.Close()

	router := mux.NewRouter().StrictSlash(true)

	router.HandleFunc("/", withConn(conn, portfolio.HandlePortfolio)).Methods("GET")
	router.HandleFunc("/login", withConn(conn, auth.HandleViewLoginForm)).Methods("GET")
	router.HandleFunc("/login", withConn(conn, auth.HandleLogin)).Methods("POST")
	router.HandleFunc("/logout", withConn(conn, auth.HandleLogout)).Methods("POST")
	router.HandleFunc("/register", withConn(conn, auth.HandleViewRegisterForm)).Methods("GET")
	router.HandleFunc("/register", withConn(conn, auth.HandleRegister)).Methods("POST")
	router.HandleFunc("/quote", withConn(conn, trade.HandleViewQuoteForm)).Methods("GET")
	router.HandleFunc("/quote", withConn(conn, trade.HandleQuote)).Methods("POST")
	router.HandleFunc("/buy", withConn(conn, trade.HandleViewBuyForm)).Methods("GET")
	router.HandleFunc("/buy", withConn(conn, trade.HandleBuy)).Methods("POST")
	router.HandleFunc("/sell", withConn(conn, trade.HandleViewSellForm)).Methods("GET")
	router.HandleFunc("/sell", withConn(conn, trade.HandleSell)).Methods("POST")
	router.HandleFunc("/history", withConn(conn, history.HandleHistory)).Methods("GET")

	port := os.Getenv("PORT")

	if len(port) == 0 {
		port = "8000"
	}

	server := http.Server{
		Addr:    ":" + port,
		Handler: noCache(router),
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %s \n", err)
		}
	}()

	log.Println("Server started")
	<-done

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer func() {
		cancel()
	}()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shut down failed: %+v", err)
	}

	log.Println("Server shut down successfully")
}
