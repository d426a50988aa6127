// Package jsonb provides column types for nested values stored as Postgres jsonb.
package jsonb

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

var errUnsupportedSource = errors.New("unsupported jsonb source type")

// List is an ordered list persisted as a jsonb array. A nil list is written as '[]'.
type List[T any] []T

func (l List[T]) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}

	data, err := json.Marshal([]T(l))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal jsonb list: %w", err)
	}

	return data, nil
}

func (l *List[T]) Scan(src any) error {
	data, err := sourceBytes(src)
	if err != nil {
		return err
	}

	if len(data) == 0 {
		*l = nil

		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to unmarshal jsonb list: %w", err)
	}

	*l = items

	return nil
}

// Map is a string keyed object persisted as a jsonb object. A nil map is written as '{}'.
type Map map[string]string

func (m Map) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}

	data, err := json.Marshal(map[string]string(m))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal jsonb map: %w", err)
	}

	return data, nil
}

func (m *Map) Scan(src any) error {
	data, err := sourceBytes(src)
	if err != nil {
		return err
	}

	if len(data) == 0 {
		*m = nil

		return nil
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to unmarshal jsonb map: %w", err)
	}

	*m = values

	return nil
}

func sourceBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", errUnsupportedSource, src)
	}
}
