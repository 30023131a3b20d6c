package model

import (
	"testing"

	"github.com/example/stockfolio/internal/database"
)

type fakeRows struct {
	rows  [][]any
	index int
}

func (rows *fakeRows) Next() bool {
	rows.index++

	return rows.index <= len(rows.rows)
}

func (rows *fakeRows) Scan(dest ...any) error {
	for i, value := range rows.rows[rows.index-1] {
		switch pointer := dest[i].(type) {
		case *string:
			*pointer = value.(string)
		case *int:
			*pointer = value.(int)
		}
	}

	return nil
}

func (rows *fakeRows) Close() {}

func (rows *fakeRows) Err() error {
	return nil
}

type fakeConn struct {
	rows [][]any
}

func (conn *fakeConn) Exec(sql string, arguments ...any) error {
	return nil
}

func (conn *fakeConn) Query(sql string, arguments ...any) (database.Rows, error) {
	return &fakeRows{rows: conn.rows}, nil
}

func (conn *fakeConn) QueryRow(sql string, arguments ...any) database.Row {
	return nil
}

func TestLoadList(t *testing.T) {
	conn := &fakeConn{rows: [][]any{
		{"AAA", 5},
		{"BBB", 2},
	}}

	// Pre-filled values must be replaced, not appended to.
	holdingList := []Holding{{Symbol: "OLD", Quantity: 1}}

	err := LoadList(
		conn,
		&holdingList,
		4,
		func(row database.Row, holding *Holding) error {
			return row.Scan(&holding.Symbol, &holding.Quantity)
		},
		"select symbol, quantity from stocks where user_id = $1",
		1,
	)

	if err != nil {
		t.Fatalf("LoadList() error = %v", err)
	}

	want := []Holding{
		{Symbol: "AAA", Quantity: 5},
		{Symbol: "BBB", Quantity: 2},
	}

	if len(holdingList) != len(want) {
		t.Fatalf("LoadList() loaded %d rows, want %d", len(holdingList), len(want))
	}

	for i := range want {
		if holdingList[i] != want[i] {
			t.Errorf("holdingList[%d] = %v, want %v", i, holdingList[i], want[i])
		}
	}
}

func TestLoadListWithNoRows(t *testing.T) {
	var holdingList []Holding

	err := LoadList(
		&fakeConn{},
		&holdingList,
		4,
		func(row database.Row, holding *Holding) error {
			return row.Scan(&holding.Symbol, &holding.Quantity)
		},
		"select symbol, quantity from stocks where user_id = $1",
		1,
	)

	if err != nil {
		t.Fatalf("LoadList() error = %v", err)
	}

	if len(holdingList) != 0 {
		t.Errorf("LoadList() loaded %d rows, want 0", len(holdingList))
	}
}
