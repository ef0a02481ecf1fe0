package sentiment

import (
	"context"
	"log/slog"
)

// PolarityCache memoizes scores by text. GetPolarities returns only the hits;
// a failed lookup behaves like a miss for every text.
type PolarityCache interface {
	GetPolarities(ctx context.Context, texts []string) map[string]float64
	SetPolarities(ctx context.Context, polarities map[string]float64) error
}

// Cached consults cache before delegating to Scorer. Cache failures are
// logged and never change the scores returned.
type Cached struct {
	Scorer  PolarityScorer
	Cache   PolarityCache
	Workers int
}

func NewCached(scorer PolarityScorer, cache PolarityCache, workers int) *Cached {
	return &Cached{Scorer: scorer, Cache: cache, Workers: workers}
}

func (c *Cached) Polarity(ctx context.Context, text string) (float64, error) {
	scores, err := c.PolarityBatch(ctx, []string{text})
	if err != nil {
		return 0, err
	}
	return scores[0], nil
}

func (c *Cached) PolarityBatch(ctx context.Context, texts []string) ([]float64, error) {
	positions := make(map[string][]int, len(texts))
	var unique []string
	for i, text := range texts {
		if _, seen := positions[text]; !seen {
			unique = append(unique, text)
		}
		positions[text] = append(positions[text], i)
	}

	scores := make([]float64, len(texts))
	var hits map[string]float64
	if len(unique) > 0 {
		hits = c.Cache.GetPolarities(ctx, unique)
	}

	var misses []string
	for _, text := range unique {
		p, ok := hits[text]
		if !ok {
			misses = append(misses, text)
			continue
		}
		for _, i := range positions[text] {
			scores[i] = p
		}
	}

	slog.Debug("[PolarityCache] Lookup complete",
		slog.Int("hits", len(unique)-len(misses)),
		slog.Int("misses", len(misses)))

	if len(misses) == 0 {
		return scores, nil
	}

	fresh, err := scoreAll(ctx, c.Scorer, misses, c.Workers)
	if err != nil {
		return nil, err
	}

	store := make(map[string]float64, len(misses))
	for j, text := range misses {
		for _, i := range positions[text] {
			scores[i] = fresh[j]
		}
		store[text] = fresh[j]
	}
	if err := c.Cache.SetPolarities(ctx, store); err != nil {
		slog.Warn("[PolarityCache] Failed to store polarities",
			slog.Int("count", len(store)),
			slog.String("error", err.Error()))
	}
	return scores, nil
}
