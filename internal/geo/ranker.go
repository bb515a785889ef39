// Artwalk - Public Art Catalogue and Nearby Attraction Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artwalk

package geo

import (
	"context"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/artwalk/internal/logging"
)

// Default ranking parameters.
const (
	DefaultRadiusKm = 6.0
	DefaultLimit    = 3
)

var (
	// CandidatesSkippedTotal counts candidates dropped for unusable coordinates.
	CandidatesSkippedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "proximity_candidates_skipped_total",
			Help: "Total number of proximity candidates skipped because of malformed coordinates",
		},
	)

	// RankDuration measures one Nearest call.
	RankDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "proximity_rank_duration_seconds",
			Help:    "Duration of proximity ranking in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)
)

// Candidate is anything with an id and an optional position.
// ok is false when the stored coordinates are missing.
type Candidate interface {
	CandidateID() int64
	Coordinates() (lat, lng float64, ok bool)
}

// Ranked pairs a candidate with its distance from the query point.
type Ranked[T Candidate] struct {
	Item       T
	DistanceKm float64
}

// Ranker selects the nearest candidates within a radius.
type Ranker struct {
	RadiusKm float64
	Limit    int
}

// NewRanker returns a ranker, substituting defaults for non-positive values.
func NewRanker(radiusKm float64, limit int) Ranker {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return Ranker{RadiusKm: radiusKm, Limit: limit}
}

// Nearest returns up to r.Limit candidates whose distance from origin is at
// most r.RadiusKm, closest first with ties broken by ascending id. Candidates
// with missing or invalid coordinates are skipped. The result is never nil.
// candidates is read but not modified or retained.
func Nearest[T Candidate](ctx context.Context, r Ranker, origin Point, candidates []T) []Ranked[T] {
	start := time.Now()
	defer func() { RankDuration.Observe(time.Since(start).Seconds()) }()

	r = NewRanker(r.RadiusKm, r.Limit)
	results := make([]Ranked[T], 0, r.Limit)

	for _, c := range candidates {
		lat, lng, ok := c.Coordinates()
		p := Point{Lat: lat, Lng: lng}
		if !ok || !p.Valid() {
			CandidatesSkippedTotal.Inc()
			logging.Ctx(ctx).Warn().
				Int64("candidate_id", c.CandidateID()).
				Msg("Skipping proximity candidate with malformed coordinates")
			continue
		}

		d := Haversine(origin, p)
		if d <= r.RadiusKm {
			results = append(results, Ranked[T]{Item: c, DistanceKm: d})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].DistanceKm != results[j].DistanceKm {
			return results[i].DistanceKm < results[j].DistanceKm
		}
		return results[i].Item.CandidateID() < results[j].Item.CandidateID()
	})

	if len(results) > r.Limit {
		results = results[:r.Limit]
	}
	return results
}

// Nearest is a convenience wrapper for rankers used with a single candidate type.
func (r Ranker) Nearest(ctx context.Context, origin Point, candidates []Candidate) []Ranked[Candidate] {
	return Nearest(ctx, r, origin, candidates)
}
