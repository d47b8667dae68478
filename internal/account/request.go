package account

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ShapeError reports a body that is not a well-formed account request.
// No rule is evaluated for such a body.
type ShapeError struct {
	Field  string
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid request data: %s", e.Reason)
	}
	return fmt.Sprintf("invalid request data: %s %s", e.Field, e.Reason)
}

// ParseRequest decodes a JSON body into a RawInput and checks its shape.
//
// Accepted: a single JSON object whose nickname and accountType are strings
// (or absent/null) and whose savingsGoal is a string, a number or null.
// Missing fields are fine; the sanitizer and rules deal with them.
func ParseRequest(body []byte) (RawInput, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, &ShapeError{Reason: "body is not valid JSON"}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ShapeError{Reason: "unexpected trailing data"}
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, &ShapeError{Reason: "body must be a JSON object"}
	}

	in := RawInput(obj)
	if err := checkShape(in); err != nil {
		return nil, err
	}
	return in, nil
}

func checkShape(in RawInput) error {
	for _, field := range []string{FieldNickname, FieldAccountType} {
		switch in[field].(type) {
		case nil, string:
		default:
			return &ShapeError{Field: field, Reason: "must be a string"}
		}
	}

	switch in[FieldSavingsGoal].(type) {
	case nil, string, json.Number, float64:
	default:
		return &ShapeError{Field: FieldSavingsGoal, Reason: "must be a string or a number"}
	}

	return nil
}
