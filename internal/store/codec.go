package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/nssportal/internal/common"
)

// LoadCollection reads the JSON array stored under key.
//
// An absent key yields an empty collection and a nil error. Data that does
// not decode yields an empty collection and an error wrapping
// common.ErrCorrupt, so callers can log it and carry on. Any other error
// comes from the store itself.
func LoadCollection[T any](ctx context.Context, s Store, key string) ([]T, error) {
	raw, err := s.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return []T{}, fmt.Errorf("%w: %s: %v", common.ErrCorrupt, key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// EncodeCollection renders items as a JSON array; an empty or nil collection
// is written as [] rather than null.
func EncodeCollection[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}
	return b, nil
}
