package acctreports

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
)

func sampleRecords() []Record {
	return []Record{
		NewRecord(F(FieldCode, "1000"), F(FieldFullName, "Assets:Checking"), F(FieldBalance, A("1234.5"))),
		NewRecord(F(FieldCode, ""), F(FieldFullName, "Expenses:Food, Drinks"), F(FieldBalance, A("-0.005"))),
	}
}

func TestParseFormat(t *testing.T) {
	testCases := []struct {
		in   string
		want Format
		err  bool
	}{
		{"csv", CSV, false},
		{"JSON", JSON, false},
		{" json ", JSON, false},
		{"xml", CSV, true},
		{"", CSV, true},
	}
	for _, tc := range testCases {
		got, err := ParseFormat(tc.in)
		if (err != nil) != tc.err {
			t.Fatalf("ParseFormat(%q) error = %v, want error %v", tc.in, err, tc.err)
		}
		if err != nil && !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tc.in, err)
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCSVSink(t *testing.T) {
	var b bytes.Buffer
	sink := NewSink(CSV, &b)
	for _, r := range sampleRecords() {
		if err := sink.Emit(r); err != nil {
			t.Fatalf("Emit() error = %v", err)
		}
	}
	if err := sink.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	want := "code,fullname,balance\n" +
		"1000,Assets:Checking,1234.50\n" +
		",\"Expenses:Food, Drinks\",-0.01\n"
	if got := b.String(); got != want {
		t.Errorf("csv output = %q, want %q", got, want)
	}
}

func TestCSVSink_NoRecords(t *testing.T) {
	var b bytes.Buffer
	sink := NewSink(CSV, &b)
	if err := sink.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("csv output = %q, want nothing", b.String())
	}
}

func TestJSONSink(t *testing.T) {
	var b bytes.Buffer
	sink := NewSink(JSON, &b)
	for _, r := range sampleRecords() {
		if err := sink.Emit(r); err != nil {
			t.Fatalf("Emit() error = %v", err)
		}
	}
	if err := sink.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	// one object per line, keys in record order, amounts as numbers with 2 digits.
	wantLines := []string{
		`{"code":"1000","fullname":"Assets:Checking","balance":1234.50}`,
		`{"code":"","fullname":"Expenses:Food, Drinks","balance":-0.01}`,
	}
	scanner := bufio.NewScanner(&b)
	var i int
	for ; scanner.Scan(); i++ {
		line := scanner.Text()
		if i >= len(wantLines) {
			t.Fatalf("unexpected line %q", line)
		}
		if line != wantLines[i] {
			t.Errorf("line %d = %s, want %s", i, line, wantLines[i])
		}

		dec := json.NewDecoder(strings.NewReader(line))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			t.Fatalf("invalid json %q: %v", line, err)
		}
		balance, err := jsonpath.Get("$.balance", v)
		if err != nil {
			t.Fatalf("jsonpath.Get() error = %v", err)
		}
		if _, ok := balance.(json.Number); !ok {
			t.Errorf("balance is a %T, want a json number", balance)
		}
	}
	if i != len(wantLines) {
		t.Errorf("got %d lines, want %d", i, len(wantLines))
	}
}

func TestRecord(t *testing.T) {
	r := NewRecord(F(FieldPeriod, D("2016-02-29")), F(FieldType, Liability), F(FieldBalance, A(3)))
	if got, want := r.Keys(), []string{"period", "type", "balance"}; strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got, want := r.Strings(), []string{"2016-02-29", "liability", "3.00"}; strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Strings() = %v, want %v", got, want)
	}
	got, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `{"period":"2016-02-29","type":"liability","balance":3.00}`; string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
	if v, ok := r.Get(FieldType); !ok || v != Liability {
		t.Errorf("Get(type) = %v, %v", v, ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Errorf("Get(missing) should not be found")
	}
}

func TestCollector(t *testing.T) {
	var c Collector
	for _, r := range sampleRecords() {
		c.Emit(r)
	}
	if len(c.Records) != 2 || c.Flush() != nil {
		t.Errorf("Collector kept %d records, want 2", len(c.Records))
	}
}
