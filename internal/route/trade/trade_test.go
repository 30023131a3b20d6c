package trade

import (
	"testing"
)

func TestParseShares(t *testing.T) {
	testCases := []struct {
		name      string
		value     string
		want      int
		wantError bool
	}{
		{name: "Positive integer", value: "5", want: 5},
		{name: "One share", value: "1", want: 1},
		{name: "Surrounding whitespace", value: " 10 ", want: 10},
		{name: "Zero shares", value: "0", wantError: true},
		{name: "Negative shares", value: "-3", wantError: true},
		{name: "Fractional shares", value: "1.5", wantError: true},
		{name: "Not a number", value: "lots", wantError: true},
		{name: "Empty field", value: "", wantError: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			shares, err := parseShares(testCase.value)

			if testCase.wantError {
				if err == nil {
					t.Fatalf("parseShares(%q) expected an error", testCase.value)
				}

				return
			}

			if err != nil {
				t.Fatalf("parseShares(%q) error = %v", testCase.value, err)
			}

			if shares != testCase.want {
				t.Errorf("parseShares(%q) = %d, want %d", testCase.value, shares, testCase.want)
			}
		})
	}
}

func TestNormalizeSymbol(t *testing.T) {
	testCases := []struct {
		value string
		want  string
	}{
		{value: "aapl", want: "AAPL"},
		{value: " nflx ", want: "NFLX"},
		{value: "AAA", want: "AAA"},
		{value: "  ", want: ""},
	}

	for _, testCase := range testCases {
		if got := normalizeSymbol(testCase.value); got != testCase.want {
			t.Errorf("normalizeSymbol(%q) = %q, want %q", testCase.value, got, testCase.want)
		}
	}
}
