package dsl

import "testing"

func TestDateMath(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{NowMinus(3, Minutes), "now-3m"},
		{NowMinus(5, Years), "now-5y"},
		{DateMinus("2020-06-01", 3, Months), "2020-06-01||-3M"},
		{DateMinus("2020-06-01", 15, Years), "2020-06-01||-15y"},
		{DateMinus("not-a-date", 1, Years), "not-a-date||-1y"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}
}
