package dto

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// FlexibleInt decodes a JSON integer that may also arrive as a numeric
// string ("5") or an integral float (5.0), the way form-driven clients send it.
type FlexibleInt int

func (n *FlexibleInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	kind := "number"
	if raw == "true" || raw == "false" {
		kind = "bool"
	} else if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
		kind = "string"
	}

	if i, err := strconv.Atoi(raw); err == nil {
		*n = FlexibleInt(i)
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
		*n = FlexibleInt(int(f))
		return nil
	}

	return &json.UnmarshalTypeError{Value: kind, Type: reflect.TypeOf(0)}
}

// IntPtr converts an optional FlexibleInt to the *int the entities store.
func (n *FlexibleInt) IntPtr() *int {
	if n == nil {
		return nil
	}
	i := int(*n)
	return &i
}
