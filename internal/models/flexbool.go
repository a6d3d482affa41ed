package models

import (
	"bytes"
	"database/sql/driver"
	"fmt"
)

// FlexBool normalizes the inconsistently typed booleans the transport layer
// delivers: numeric 1/0, native booleans, their string forms, or null. Only
// 1 and true are truthy; everything else, including absent values, is false.
// It marshals as a native JSON bool.
type FlexBool bool

// Bool returns the normalized value.
func (b FlexBool) Bool() bool {
	return bool(b)
}

// UnmarshalJSON accepts true/false, 1/0, "1"/"0", "true"/"false" and null.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.Trim(data, `"`)) {
	case "1", "true":
		*b = true
	case "0", "false", "null", "":
		*b = false
	default:
		return fmt.Errorf("cannot unmarshal %s into bool", data)
	}
	return nil
}

// Scan implements sql.Scanner for BOOLEAN, SMALLINT and text columns.
func (b *FlexBool) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*b = false
	case bool:
		*b = FlexBool(v)
	case int64:
		*b = v == 1
	case []byte:
		*b = string(v) == "1" || string(v) == "true" || string(v) == "t"
	case string:
		*b = v == "1" || v == "true" || v == "t"
	default:
		return fmt.Errorf("cannot scan %T into bool", value)
	}
	return nil
}

// Value implements driver.Valuer.
func (b FlexBool) Value() (driver.Value, error) {
	return bool(b), nil
}
