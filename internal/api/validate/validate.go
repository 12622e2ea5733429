package validate

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string {
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Collect drops nil results and returns nil when nothing failed.
func Collect(fields ...*ErrField) error {
	var errs Errs
	for _, f := range fields {
		if f != nil {
			errs = append(errs, *f)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func MinInt(field string, v, min int64) *ErrField {
	if v < min {
		return &ErrField{Field: field, Msg: "must be >= " + strconv.FormatInt(min, 10)}
	}
	return nil
}

// PositiveInt parses raw as a base 10 int64 greater than zero.
func PositiveInt(field, raw string) (int64, *ErrField) {
	if ef := Required(field, raw); ef != nil {
		return 0, ef
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &ErrField{Field: field, Msg: "must be an integer"}
	}
	return v, MinInt(field, v, 1)
}

// Amount reads a positive amount from a request body holding either a bare
// number or {"amount": N}.
func Amount(body []byte) (int64, *ErrField) {
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '{' {
		var req struct {
			Amount *json.Number `json:"amount"`
		}
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		if err := dec.Decode(&req); err != nil {
			return 0, &ErrField{Field: "amount", Msg: "malformed json"}
		}
		if req.Amount == nil {
			return 0, &ErrField{Field: "amount", Msg: "required"}
		}
		return PositiveInt("amount", req.Amount.String())
	}
	return PositiveInt("amount", string(body))
}
