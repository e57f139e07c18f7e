package errors

import (
	"encoding/json"
	"strings"
)

// ErrorMessage is the error payload of the Echo-Commerce backend API.
type ErrorMessage struct {
	Detail Detail `json:"detail"`
}

func (e ErrorMessage) String() string {
	return e.Detail.String()
}

func (e ErrorMessage) Error() string {
	return e.String()
}

// FieldError is a validation failure on a single request field.
type FieldError struct {
	Loc []string `json:"loc"`
	Msg string   `json:"msg"`
}

// Detail is either a plain message or a list of field errors.
//
// The backend sends validation failures as a list; everything else as a
// plain string. Either way, String() folds it into one line for display.
type Detail struct {
	Message string
	Fields  []FieldError
}

func (d Detail) String() string {
	if len(d.Fields) == 0 {
		return d.Message
	}
	lines := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		if len(f.Loc) == 0 {
			lines = append(lines, f.Msg)
			continue
		}
		lines = append(lines, strings.Join(f.Loc, ".")+": "+f.Msg)
	}
	return strings.Join(lines, "; ")
}

// implement encoding/json.Marshaller
func (d Detail) MarshalJSON() ([]byte, error) {
	if len(d.Fields) != 0 {
		return json.Marshal(d.Fields)
	}
	return json.Marshal(d.Message)
}

// implement encoding/json.Unmarshaller
func (d *Detail) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		d.Message = s
		d.Fields = nil
		return nil
	}

	var fields []FieldError
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	d.Message = ""
	d.Fields = fields
	return nil
}
