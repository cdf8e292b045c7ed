package service

import (
	"context"
	"fmt"

	"github.com/tomsquest/wordref/internal/models"
)

type DictionaryAPII interface {
	AvailableDicts(ctx context.Context) ([]models.LanguagePair, error)
}

// PairRegistry is an immutable snapshot of the language pairs the dictionary
// source supports, taken once at startup. Order is the source's own.
type PairRegistry struct {
	pairs []models.LanguagePair
	index map[string]models.LanguagePair
}

func NewPairRegistry(pairs []models.LanguagePair) *PairRegistry {
	index := make(map[string]models.LanguagePair, len(pairs))
	for _, p := range pairs {
		index[p.Code] = p
	}
	return &PairRegistry{pairs: pairs, index: index}
}

// LoadRegistry fetches the available dictionaries and snapshots them.
func LoadRegistry(ctx context.Context, api DictionaryAPII) (*PairRegistry, error) {
	pairs, err := api.AvailableDicts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load language pairs: %w", err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("dictionary source returned no language pairs")
	}
	return NewPairRegistry(pairs), nil
}

func (r *PairRegistry) Supported(code string) bool {
	_, exists := r.index[code]
	return exists
}

func (r *PairRegistry) Pair(code string) (models.LanguagePair, bool) {
	p, exists := r.index[code]
	return p, exists
}

func (r *PairRegistry) Len() int {
	return len(r.pairs)
}

// Suggestions returns up to limit pairs in registry order, skipping codes in
// denied. Denied codes stay valid for direct lookups; they are only kept out
// of the sample shown to the user.
func (r *PairRegistry) Suggestions(limit int, denied []string) []models.LanguagePair {
	deniedSet := make(map[string]bool, len(denied))
	for _, code := range denied {
		deniedSet[code] = true
	}

	suggestions := make([]models.LanguagePair, 0, limit)
	for _, p := range r.pairs {
		if len(suggestions) == limit {
			break
		}
		if deniedSet[p.Code] {
			continue
		}
		suggestions = append(suggestions, p)
	}
	return suggestions
}
