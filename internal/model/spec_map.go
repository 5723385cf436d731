package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SpecMap stores product specs (attribute name -> value) as a JSON column.
type SpecMap map[string]string

func (m SpecMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *SpecMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	b, err := toBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, m)
}

// Location is the geolocation attached to an activation, also stored as JSON.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, err := toBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, l)
}

func toBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported JSON column type: %T", value)
	}
}
