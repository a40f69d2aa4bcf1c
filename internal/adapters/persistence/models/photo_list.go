package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PhotoList stores a sequence of photo data URIs as a JSON column.
// The mobile app sends photos as base64 image data strings.
type PhotoList []string

// Value implements driver.Valuer
func (p PhotoList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (p *PhotoList) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into PhotoList", value)
	}
}
