package services

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"quiz-ingest-backend/internal/models"
)

const undefinedCell = "undefined"

// RenderItem turns one submitted array element into a QuizItem. Absent
// fields render as "undefined"; elements that are not objects render every
// field that way.
func RenderItem(raw json.RawMessage) models.QuizItem {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		fields = nil
	}

	cell := func(key string) string {
		v, ok := fields[key]
		if !ok {
			return undefinedCell
		}
		return renderValue(v)
	}

	return models.QuizItem{
		Question:      cell("question"),
		OptionA:       cell("optionA"),
		OptionB:       cell("optionB"),
		OptionC:       cell("optionC"),
		OptionD:       cell("optionD"),
		CorrectAnswer: cell("correctAnswer"),
	}
}

func renderValue(v json.RawMessage) string {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return undefinedCell
	}

	switch v[0] {
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return string(v)
		}
		return s
	case '{':
		return "[object Object]"
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(v, &elems); err != nil {
			return string(v)
		}
		parts := make([]string, len(elems))
		for i, e := range elems {
			if string(bytes.TrimSpace(e)) == "null" {
				continue
			}
			parts[i] = renderValue(e)
		}
		return strings.Join(parts, ",")
	case 't', 'f', 'n':
		return string(v)
	default:
		return renderNumber(string(v))
	}
}

// renderNumber prints a JSON number the way a JS engine stringifies it:
// integers without a fraction, no trailing zeros, unpadded exponents and
// -0 as 0.
func renderNumber(literal string) string {
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return literal
	}
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs < 1e-6 || abs >= 1e21 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
