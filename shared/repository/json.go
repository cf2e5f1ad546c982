package repository

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON stores a value in a JSONB column.
type JSON[T any] struct {
	Data T
}

func NewJSON[T any](data T) JSON[T] {
	return JSON[T]{Data: data}
}

func (j JSON[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(j.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json column: %w", err)
	}

	return b, nil
}

func (j *JSON[T]) Scan(src any) error {
	var raw []byte

	switch v := src.(type) {
	case nil:
		var zero T
		j.Data = zero

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}

	if err := json.Unmarshal(raw, &j.Data); err != nil {
		return fmt.Errorf("failed to unmarshal json column: %w", err)
	}

	return nil
}

func (j JSON[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.Data)
}

func (j *JSON[T]) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &j.Data)
}
