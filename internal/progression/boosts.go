package progression

import (
	"time"

	"questa/internal/models"
)

// Registry tracks active boost instances in memory and implements
// ActiveBoostsView for the ledger. Instances are immutable; they expire
// lazily by timestamp comparison at read time, never via scheduled
// callbacks. New activations are handed to persist (if set) for durable
// storage.
type Registry struct {
	boosts  []models.Boost
	persist func(models.Boost)
}

// NewRegistry seeds the registry with previously persisted active boosts.
func NewRegistry(active []models.Boost, persist func(models.Boost)) *Registry {
	return &Registry{boosts: append([]models.Boost(nil), active...), persist: persist}
}

// Activate records a new boost expiring after d.
func (r *Registry) Activate(kind string, factor float64, d time.Duration, now time.Time) models.Boost {
	b := models.Boost{Kind: kind, Factor: factor, ExpiresAt: now.Add(d)}
	r.boosts = append(r.boosts, b)
	if r.persist != nil {
		r.persist(b)
	}
	return b
}

// Active returns the non-expired boosts, dropping expired ones from the
// in-memory set as a side effect.
func (r *Registry) Active(now time.Time) []models.Boost {
	live := r.boosts[:0]
	for _, b := range r.boosts {
		if b.Active(now) {
			live = append(live, b)
		}
	}
	r.boosts = live
	return append([]models.Boost(nil), live...)
}

// Multiplier returns the product of all active factors of the given kind.
// Multipliers compose multiplicatively: a 1.1x and a 2x boost active
// together yield 2.2x. Returns 1 when none are active.
func (r *Registry) Multiplier(kind string, now time.Time) float64 {
	m := 1.0
	for _, b := range r.boosts {
		if b.Kind == kind && b.Active(now) {
			m *= b.Factor
		}
	}
	return m
}

var _ ActiveBoostsView = (*Registry)(nil)
