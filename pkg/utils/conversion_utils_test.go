package utils

import (
	"encoding/json"
	"testing"
)

func TestFlexFloatAcceptsNumbersAndStrings(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{`50000`, 50000},
		{`"50000"`, 50000},
		{`" 12.5 "`, 12.5},
		{`"abc"`, 0},
		{`""`, 0},
		{`null`, 0},
	}
	for _, tc := range cases {
		var v struct {
			Salary FlexFloat `json:"salary"`
		}
		if err := json.Unmarshal([]byte(`{"salary":`+tc.in+`}`), &v); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if v.Salary.Float64() != tc.want {
			t.Fatalf("salary from %s = %v, want %v", tc.in, v.Salary, tc.want)
		}
	}
}

func TestFlexIntTruncates(t *testing.T) {
	var v struct {
		Quantity FlexInt `json:"quantity"`
	}
	if err := json.Unmarshal([]byte(`{"quantity":"12.7"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.Quantity.Int() != 12 {
		t.Fatalf("quantity = %d, want 12", v.Quantity)
	}
}

func TestFlexFloatRejectsWrongJSONType(t *testing.T) {
	var v struct {
		Amount FlexFloat `json:"amount"`
	}
	if err := json.Unmarshal([]byte(`{"amount":{"x":1}}`), &v); err == nil {
		t.Fatal("expected error for object value")
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny("Tell me about INVENTORY", "stock", "inventory") {
		t.Fatal("expected case-insensitive match")
	}
	if ContainsAny("hello", "", "bye") {
		t.Fatal("unexpected match")
	}
}
