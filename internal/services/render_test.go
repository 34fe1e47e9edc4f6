package services

import (
	"encoding/json"
	"testing"
)

func TestRenderItemCompleteRecord(t *testing.T) {
	raw := json.RawMessage(`{"question":"2+2?","optionA":"3","optionB":"4","optionC":"5","optionD":"6","correctAnswer":"optionB"}`)

	item := RenderItem(raw)
	got := item.Cells()
	want := []string{"2+2?", "3", "4", "5", "6", "optionB"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderItemMissingFieldsAreUndefined(t *testing.T) {
	item := RenderItem(json.RawMessage(`{"question":"Capital of France?","optionA":"Paris"}`))

	if item.Question != "Capital of France?" || item.OptionA != "Paris" {
		t.Fatalf("present fields changed: %+v", item)
	}
	for _, cell := range []string{item.OptionB, item.OptionC, item.OptionD, item.CorrectAnswer} {
		if cell != "undefined" {
			t.Fatalf("missing field rendered as %q, want undefined", cell)
		}
	}
}

func TestRenderItemNonObjectElements(t *testing.T) {
	for _, raw := range []string{`null`, `42`, `"text"`, `true`, `[1,2]`} {
		item := RenderItem(json.RawMessage(raw))
		for i, cell := range item.Cells() {
			if cell != "undefined" {
				t.Fatalf("element %s cell %d = %q, want undefined", raw, i, cell)
			}
		}
	}
}

func TestRenderValueKinds(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`"plain"`, "plain"},
		{`"with \"quotes\", commas"`, `with "quotes", commas`},
		{`4`, "4"},
		{`4.50`, "4.5"},
		{`1e3`, "1000"},
		{`-2`, "-2"},
		{`-0`, "0"},
		{`0.0`, "0"},
		{`1e-7`, "1e-7"},
		{`-2.5e-8`, "-2.5e-8"},
		{`1e21`, "1e+21"},
		{`1.5e300`, "1.5e+300"},
		{`true`, "true"},
		{`false`, "false"},
		{`null`, "null"},
		{`{"nested":1}`, "[object Object]"},
		{`["a","b"]`, "a,b"},
		{`[1,null,"x"]`, "1,,x"},
		{`[]`, ""},
		{`[[1,2],3]`, "1,2,3"},
	}

	for _, tc := range cases {
		if got := renderValue(json.RawMessage(tc.raw)); got != tc.want {
			t.Fatalf("renderValue(%s) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
