// Package ledger is the authoritative record of cash, holdings, and trade
// history. Nothing outside this package writes those rows.
package ledger

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/example/stockfolio/internal/database"
	"github.com/example/stockfolio/internal/model"
)

var ErrDuplicateUsername = errors.New("username already in use")
var ErrInvalidCredentials = errors.New("invalid username and/or password")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrInsufficientShares = errors.New("insufficient shares")

const uniqueViolationCode = "23505"

// Register creates a user with a hashed password and the starting cash
// balance, returning the new user's ID.
func Register(conn *database.Conn, username string, password string) (int, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), 14)

	if err != nil {
		return 0, err
	}

	row := conn.QueryRow(
		"insert into users (username, password) values ($1, $2) returning id",
		username,
		string(passwordHash),
	)

	var userID int

	if err := row.Scan(&userID); err != nil {
		var pgError *pgconn.PgError

		if errors.As(err, &pgError) && pgError.Code == uniqueViolationCode {
			return 0, ErrDuplicateUsername
		}

		return 0, err
	}

	return userID, nil
}

// Authenticate checks a username and password, returning the user's ID.
//
// Unknown usernames and wrong passwords both produce ErrInvalidCredentials,
// so a caller can't learn which of the two was wrong.
func Authenticate(conn *database.Conn, username string, password string) (int, error) {
	row := conn.QueryRow(
		"select id, password from users where username = $1",
		username,
	)

	var userID int
	var passwordHash string

	if err := row.Scan(&userID, &passwordHash); err != nil {
		if err == database.ErrNoRows {
			return 0, ErrInvalidCredentials
		}

		return 0, err
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) != nil {
		return 0, ErrInvalidCredentials
	}

	return userID, nil
}

// applyBuy computes the post-trade cash and held quantity for a purchase.
//
// On error the pre-trade values are returned unchanged.
func applyBuy(
	cash decimal.Decimal,
	held int,
	price decimal.Decimal,
	shares int,
) (decimal.Decimal, int, error) {
	cost := price.Mul(decimal.NewFromInt(int64(shares)))

	if cost.GreaterThan(cash) {
		return cash, held, ErrInsufficientFunds
	}

	return cash.Sub(cost), held + shares, nil
}

// applySell computes the post-trade cash and held quantity for a sale.
//
// On error the pre-trade values are returned unchanged.
func applySell(
	cash decimal.Decimal,
	held int,
	price decimal.Decimal,
	shares int,
) (decimal.Decimal, int, error) {
	if shares > held {
		return cash, held, ErrInsufficientShares
	}

	return cash.Add(price.Mul(decimal.NewFromInt(int64(shares)))), held - shares, nil
}

// lockCash reads a user's cash with the user row locked for the rest of
// the transaction.
func lockCash(tx *database.Tx, userID int) (decimal.Decimal, error) {
	row := tx.QueryRow("select cash from users where id = $1 for update", userID)

	var cash decimal.Decimal
	err := row.Scan(&cash)

	return cash, err
}

// heldShares reads how many shares of a symbol a user holds, with a
// missing holding row counting as zero.
func heldShares(tx *database.Tx, userID int, symbol string) (int, error) {
	row := tx.QueryRow(
		"select quantity from stocks where user_id = $1 and symbol = $2",
		userID,
		symbol,
	)

	var quantity int

	if err := row.Scan(&quantity); err != nil {
		if err == database.ErrNoRows {
			return 0, nil
		}

		return 0, err
	}

	return quantity, nil
}

func saveHolding(tx *database.Tx, userID int, symbol string, oldQuantity int, newQuantity int) error {
	if oldQuantity == 0 {
		return tx.Exec(
			"insert into stocks (user_id, symbol, quantity) values ($1, $2, $3)",
			userID,
			symbol,
			newQuantity,
		)
	}

	if newQuantity == 0 {
		return tx.Exec(
			"delete from stocks where user_id = $1 and symbol = $2",
			userID,
			symbol,
		)
	}

	return tx.Exec(
		"update stocks set quantity = $3 where user_id = $1 and symbol = $2",
		userID,
		symbol,
		newQuantity,
	)
}

func saveCash(tx *database.Tx, userID int, cash decimal.Decimal) error {
	return tx.Exec("update users set cash = $2 where id = $1", userID, cash)
}

func appendHistory(tx *database.Tx, userID int, quote model.Quote, shares int, kind string) error {
	return tx.Exec(
		"insert into history (user_id, symbol, price, shares, kind) values ($1, $2, $3, $4, $5)",
		userID,
		quote.Symbol,
		quote.Price,
		shares,
		kind,
	)
}

// Buy purchases shares of a stock at the quoted price.
//
// The cash decrement, the holding change, and the history append all happen
// in one serializable transaction, or not at all.
func Buy(conn *database.Conn, userID int, quote model.Quote, shares int) error {
	tx, err := conn.Begin()

	if err != nil {
		return err
	}

	defer tx.Rollback()

	cash, err := lockCash(tx, userID)

	if err != nil {
		return err
	}

	held, err := heldShares(tx, userID, quote.Symbol)

	if err != nil {
		return err
	}

	newCash, newHeld, err := applyBuy(cash, held, quote.Price, shares)

	if err != nil {
		return err
	}

	if err := saveHolding(tx, userID, quote.Symbol, held, newHeld); err != nil {
		return err
	}

	if err := saveCash(tx, userID, newCash); err != nil {
		return err
	}

	if err := appendHistory(tx, userID, quote, shares, model.KindPurchase); err != nil {
		return err
	}

	return tx.Commit()
}

// Sell sells shares of a stock at the quoted price.
//
// The holding row is deleted when the held quantity reaches zero. As with
// Buy, all three writes share one serializable transaction.
func Sell(conn *database.Conn, userID int, quote model.Quote, shares int) error {
	tx, err := conn.Begin()

	if err != nil {
		return err
	}

	defer tx.Rollback()

	cash, err := lockCash(tx, userID)

	if err != nil {
		return err
	}

	held, err := heldShares(tx, userID, quote.Symbol)

	if err != nil {
		return err
	}

	newCash, newHeld, err := applySell(cash, held, quote.Price, shares)

	if err != nil {
		return err
	}

	if err := saveHolding(tx, userID, quote.Symbol, held, newHeld); err != nil {
		return err
	}

	if err := saveCash(tx, userID, newCash); err != nil {
		return err
	}

	if err := appendHistory(tx, userID, quote, shares, model.KindSale); err != nil {
		return err
	}

	return tx.Commit()
}

func scanHolding(row database.Row, holding *model.Holding) error {
	return row.Scan(&holding.Symbol, &holding.Quantity)
}

// Holdings loads every stock a user currently holds, ordered by symbol.
func Holdings(conn database.Queryable, userID int, holdingList *[]model.Holding) error {
	return model.LoadList(
		conn,
		holdingList,
		10,
		scanHolding,
		"select symbol, quantity from stocks where user_id = $1 order by symbol",
		userID,
	)
}

func scanTransaction(row database.Row, transaction *model.Transaction) error {
	return row.Scan(
		&transaction.ID,
		&transaction.Symbol,
		&transaction.Price,
		&transaction.Shares,
		&transaction.Kind,
		&transaction.Time,
	)
}

// History loads a user's transactions in insertion order.
func History(conn database.Queryable, userID int, transactionList *[]model.Transaction) error {
	return model.LoadList(
		conn,
		transactionList,
		20,
		scanTransaction,
		`select id, symbol, price, shares, kind, time
		from history
		where user_id = $1
		order by time, id`,
		userID,
	)
}
