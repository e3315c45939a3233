package acctreports

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBalance(t *testing.T) {
	checking := account("Assets:Checking", "1000", Asset,
		post("2016-01-01", "100.00"),
		post("2016-01-15", "-30.25"),
		post("2016-01-31", "12.10"),
		post("2016-02-01", "50.00"),
		post("2015-12-31", "1000.00"),
	)
	end := func(s string) *Date { d := D(s); return &d }

	testCases := []struct {
		name  string
		begin Date
		end   *Date
		want  Amount
	}{
		{
			name:  "posting on begin is included",
			begin: D("2016-01-01"),
			end:   end("2016-01-15"),
			want:  A("100.00"),
		},
		{
			name:  "posting on end is excluded",
			begin: D("2016-01-01"),
			end:   end("2016-01-31"),
			want:  A("69.75"),
		},
		{
			name:  "whole month",
			begin: D("2016-01-01"),
			end:   end("2016-02-01"),
			want:  A("81.85"),
		},
		{
			name:  "no posting in window",
			begin: D("2017-01-01"),
			end:   end("2017-12-31"),
			want:  A(0),
		},
		{
			name:  "empty window",
			begin: D("2016-01-01"),
			end:   end("2016-01-01"),
			want:  A(0),
		},
		{
			name:  "running total",
			begin: D("2016-01-01"),
			end:   nil,
			want:  A("1131.85"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Balance(checking, tc.begin, tc.end); !got.Equal(tc.want) {
				t.Errorf("Balance() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBalance_NoPostings(t *testing.T) {
	empty := account("Assets:Empty", "", Asset)
	end := D("2030-01-01")
	if got := Balance(empty, D("1900-01-01"), &end); !got.IsZero() || got.String() != "0.00" {
		t.Errorf("Balance() = %v, want 0.00", got)
	}
	if got := Balance(empty, D("1900-01-01"), nil); got.String() != "0.00" {
		t.Errorf("Balance() running total = %v, want 0.00", got)
	}
}

func TestBalance_Sign(t *testing.T) {
	// a salary credited to the income account is a negative split in the ledger.
	salary := account("Income:Salary", "4000", Income, post("2016-03-10", "-2500.00"))
	card := account("Liabilities:Card", "2000", Liability, post("2016-03-11", "-45.50"), post("2016-03-20", "20"))
	end := D("2016-04-01")

	if got, want := Balance(salary, D("2016-03-01"), &end), A("2500.00"); !got.Equal(want) {
		t.Errorf("Balance(income) = %v, want %v", got, want)
	}
	if got, want := Balance(card, D("2016-03-01"), &end), A("25.50"); !got.Equal(want) {
		t.Errorf("Balance(liability) = %v, want %v", got, want)
	}
}

func TestCalculator_Inclusive(t *testing.T) {
	a := account("Expenses:Food", "5000", Expense, post("2016-01-31", "10.00"), post("2016-01-01", "1.00"))
	end := D("2016-01-31")

	halfOpen := Calculator{Policy: HalfOpen}.Balance(a, D("2016-01-01"), &end)
	inclusive := Calculator{Policy: Inclusive}.Balance(a, D("2016-01-01"), &end)
	if want := A("1.00"); !halfOpen.Equal(want) {
		t.Errorf("HalfOpen Balance() = %v, want %v", halfOpen, want)
	}
	if want := A("11.00"); !inclusive.Equal(want) {
		t.Errorf("Inclusive Balance() = %v, want %v", inclusive, want)
	}
}

// TestBalance_Rounding checks that postings are summed exactly and rounded once.
func TestBalance_Rounding(t *testing.T) {
	var postings []Posting
	for range 3 {
		postings = append(postings, post("2016-05-02", "0.005"))
	}
	a := account("Expenses:Fees", "", Expense, postings...)
	end := D("2016-06-01")

	got := Balance(a, D("2016-05-01"), &end)
	if want := "0.02"; got.String() != want { // 0.015 rounded half-up
		t.Errorf("Balance() = %v, want %v", got, want)
	}

	// rounding each posting first would give 3 * 0.01
	roundThenSum := decimal.Zero
	for _, p := range postings {
		roundThenSum = roundThenSum.Add(p.Value.Round(Places))
	}
	if roundThenSum.Equal(got.Decimal()) {
		t.Errorf("round-then-sum %v should differ from sum-then-round %v", roundThenSum, got)
	}
}

func TestAmount(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"0.005", "0.01"},
		{"-0.005", "-0.01"},
		{"1.994", "1.99"},
		{"12.3", "12.30"},
		{"-0.004", "0.00"},
		{"100", "100.00"},
	}
	for _, tc := range testCases {
		if got := A(tc.in).String(); got != tc.want {
			t.Errorf("A(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
