package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/schema"
)

// visitedAtLayouts are tried in order when parsing visited_at. Layouts
// without a zone are read as UTC.
var visitedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// flexInt accepts a JSON number or a numeric string.
type flexInt int64

// flexFloat accepts a JSON number or a numeric string.
type flexFloat float64

// flexTime accepts any of visitedAtLayouts.
type flexTime time.Time

// unquoteScalar returns the text of a JSON number or string. ok is false
// for null.
func unquoteScalar(data []byte) (string, bool, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", false, nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		return strings.TrimSpace(s), true, nil
	}
	return string(data), true, nil
}

func parseFlexInt(s string) (flexInt, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return flexInt(n), nil
}

func parseFlexFloat(s string) (flexFloat, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return flexFloat(f), nil
}

func parseFlexTime(s string) (flexTime, error) {
	for _, layout := range visitedAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return flexTime(t), nil
		}
	}
	return flexTime{}, fmt.Errorf("invalid time %q", s)
}

func (v *flexInt) UnmarshalJSON(data []byte) error {
	s, ok, err := unquoteScalar(data)
	if err != nil || !ok || s == "" {
		return err
	}
	*v, err = parseFlexInt(s)
	return err
}

func (v *flexFloat) UnmarshalJSON(data []byte) error {
	s, ok, err := unquoteScalar(data)
	if err != nil || !ok || s == "" {
		return err
	}
	*v, err = parseFlexFloat(s)
	return err
}

func (v *flexTime) UnmarshalJSON(data []byte) error {
	s, ok, err := unquoteScalar(data)
	if err != nil || !ok || s == "" {
		return err
	}
	*v, err = parseFlexTime(s)
	return err
}

// registerFlexConverters teaches d the same parsing rules as the JSON path.
// Empty form values decode to the zero value.
func registerFlexConverters(d *schema.Decoder) {
	d.RegisterConverter(flexInt(0), flexConverter(parseFlexInt))
	d.RegisterConverter(flexFloat(0), flexConverter(parseFlexFloat))
	d.RegisterConverter(flexTime{}, flexConverter(parseFlexTime))
}

func flexConverter[T any](parse func(string) (T, error)) schema.Converter {
	return func(s string) reflect.Value {
		s = strings.TrimSpace(s)
		if s == "" {
			var zero T
			return reflect.ValueOf(zero)
		}
		v, err := parse(s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(v)
	}
}
