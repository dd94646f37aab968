// Package progression implements the experience/currency economy: the
// ledger, the quadratic level curve, and temporary multiplier boosts.
package progression

import (
	"math"
	"time"

	"questa/internal/config"
	"questa/internal/models"
)

// Grant sources, recorded with each experience change.
const (
	SourceFocus  = "focus"
	SourceManual = "manual"
	SourceHabit  = "habit"
)

// ActiveBoostsView is the read-only window the ledger gets onto active
// boosts. The ledger queries it, never mutates it.
type ActiveBoostsView interface {
	Multiplier(kind string, now time.Time) float64
}

// noBoosts is the zero view: everything multiplies by 1.
type noBoosts struct{}

func (noBoosts) Multiplier(string, time.Time) float64 { return 1 }

// Ledger holds experience, level, and currency for one user session. Level
// is always derived from experience via LevelForExperience; the struct never
// carries an independently mutable level.
//
// Not safe for concurrent use: a single owner mutates it, per the app's
// single-session model.
type Ledger struct {
	experience int64
	level      int
	currency   int64
	version    int64

	boosts  ActiveBoostsView
	notify  Notifier
	persist func(models.Progression)
	clock   func() time.Time
}

// NewLedger builds a ledger from a persisted row. The stored level is
// ignored and recomputed from experience. persist, notify, and boosts may be
// nil.
func NewLedger(initial models.Progression, boosts ActiveBoostsView, notify Notifier, persist func(models.Progression)) *Ledger {
	if boosts == nil {
		boosts = noBoosts{}
	}
	if notify == nil {
		notify = NopNotifier{}
	}
	xp := initial.Experience
	if xp < 0 {
		xp = 0
	}
	currency := initial.Currency
	if currency < 0 {
		currency = 0
	}
	return &Ledger{
		experience: xp,
		level:      LevelForExperience(xp),
		currency:   currency,
		version:    initial.Version,
		boosts:     boosts,
		notify:     notify,
		persist:    persist,
		clock:      time.Now,
	}
}

// GrantExperience applies a base amount through the boost pipeline: the base
// is multiplied by the product of all active xp-multiplier boosts, rounded to
// the nearest integer, and added. Level is recomputed; a level gain grants
// CurrencyPerLevel per level and a loss deducts symmetrically (floored at
// zero), so granting and fully reversing the same amount under the same boost
// state is an exact identity. Returns the applied (post-multiplier) amount.
func (l *Ledger) GrantExperience(base int64, source string) int64 {
	amount := roundedProduct(base, l.boosts.Multiplier(models.BoostXPMultiplier, l.clock()))
	oldLevel := l.level

	l.experience += amount
	if l.experience < 0 {
		l.experience = 0
	}
	l.level = LevelForExperience(l.experience)

	switch {
	case l.level > oldLevel:
		l.currency += int64(l.level-oldLevel) * config.CurrencyPerLevel
		l.notify.LevelUp(oldLevel, l.level)
	case l.level < oldLevel:
		l.currency -= int64(oldLevel-l.level) * config.CurrencyPerLevel
		if l.currency < 0 {
			l.currency = 0
		}
	}

	l.notify.ExperienceGranted(amount, source)
	l.persistNow()
	return amount
}

// GrantCurrency applies a base amount through the currency-multiplier
// pipeline. Returns the applied amount.
func (l *Ledger) GrantCurrency(base int64) int64 {
	amount := roundedProduct(base, l.boosts.Multiplier(models.BoostCurrencyMultiplier, l.clock()))
	l.currency += amount
	if l.currency < 0 {
		l.currency = 0
	}
	l.notify.CurrencyGranted(amount)
	l.persistNow()
	return amount
}

// SpendCurrency subtracts, floored at zero. Affordability checks are the
// caller's job; the ledger clamps rather than rejects.
func (l *Ledger) SpendCurrency(amount int64) {
	l.currency -= amount
	if l.currency < 0 {
		l.currency = 0
	}
	l.persistNow()
}

// Experience returns the current experience total.
func (l *Ledger) Experience() int64 { return l.experience }

// Level returns the current derived level.
func (l *Ledger) Level() int { return l.level }

// Currency returns the spendable balance.
func (l *Ledger) Currency() int64 { return l.currency }

// NextLevelAt returns the experience threshold for reaching level+1.
func (l *Ledger) NextLevelAt() int64 {
	return ExperienceForLevel(l.level + 1)
}

// Snapshot returns the durable form of the ledger.
func (l *Ledger) Snapshot() models.Progression {
	return models.Progression{
		Experience: l.experience,
		Level:      l.level,
		Currency:   l.currency,
		Version:    l.version,
	}
}

func (l *Ledger) persistNow() {
	l.version++
	if l.persist != nil {
		l.persist(l.Snapshot())
	}
}

// LevelForExperience maps experience to a level on the quadratic curve:
// floor(sqrt(xp/100)) + 1. 100 XP reaches level 2, 400 level 3, 900 level 4.
// The float result is corrected so the threshold boundaries hold exactly for
// every non-negative integer.
func LevelForExperience(xp int64) int {
	if xp < 0 {
		xp = 0
	}
	root := int64(math.Sqrt(float64(xp) / config.XPCurveBase))
	for (root+1)*(root+1)*config.XPCurveBase <= xp {
		root++
	}
	for root > 0 && root*root*config.XPCurveBase > xp {
		root--
	}
	return int(root) + 1
}

// ExperienceForLevel returns the minimum experience at which the given level
// is reached: 100 × (level−1)².
func ExperienceForLevel(level int) int64 {
	if level <= 1 {
		return 0
	}
	n := int64(level - 1)
	return n * n * config.XPCurveBase
}

func roundedProduct(base int64, multiplier float64) int64 {
	if multiplier == 1 {
		return base
	}
	return int64(math.Round(float64(base) * multiplier))
}
