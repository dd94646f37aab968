package models

import "time"

// RewardType classifies catalog entries.
type RewardType string

const (
	RewardCoupon  RewardType = "coupon"
	RewardPowerup RewardType = "powerup"
)

// Reward is one purchasable catalog entry. Power-ups with a BoostKind
// activate a timed multiplier on purchase; coupons only record an inventory
// entry.
type Reward struct {
	ID          string
	Name        string
	Description string
	Type        RewardType
	UnlockLevel int
	Cost        int64
	BoostKind   string
	BoostFactor float64
	BoostFor    time.Duration
}

// Catalog is the built-in reward list. Deliberately small: the engine only
// needs enough entries to exercise purchase, unlock gating, and boost
// activation.
var Catalog = []Reward{
	{ID: "coupon-stretch", Name: "5-Min Stretch", Description: "Limber up.", Type: RewardCoupon, UnlockLevel: 2, Cost: 20},
	{ID: "coupon-coffee", Name: "Coffee Break", Description: "Caffeine fix.", Type: RewardCoupon, UnlockLevel: 5, Cost: 50},
	{ID: "coupon-walk", Name: "Walk Outside", Description: "Fresh air.", Type: RewardCoupon, UnlockLevel: 8, Cost: 50},
	{ID: "coupon-nap", Name: "15-Min Power Nap", Description: "Recharge.", Type: RewardCoupon, UnlockLevel: 10, Cost: 100},
	{ID: "power-xp1", Name: "XP Potion (1.1x)", Description: "+10% XP for 1h.", Type: RewardPowerup, UnlockLevel: 2, Cost: 100, BoostKind: BoostXPMultiplier, BoostFactor: 1.1, BoostFor: time.Hour},
	{ID: "power-xp2", Name: "Double XP Potion", Description: "2x XP for 1h.", Type: RewardPowerup, UnlockLevel: 10, Cost: 500, BoostKind: BoostXPMultiplier, BoostFactor: 2, BoostFor: time.Hour},
	{ID: "power-xp3", Name: "Triple XP Potion", Description: "3x XP for 30m.", Type: RewardPowerup, UnlockLevel: 20, Cost: 1000, BoostKind: BoostXPMultiplier, BoostFactor: 3, BoostFor: 30 * time.Minute},
	{ID: "power-point", Name: "Point Booster", Description: "1.5x Points for 1h.", Type: RewardPowerup, UnlockLevel: 14, Cost: 400, BoostKind: BoostCurrencyMultiplier, BoostFactor: 1.5, BoostFor: time.Hour},
}

// RewardByID looks up a catalog entry.
func RewardByID(id string) (Reward, bool) {
	for _, r := range Catalog {
		if r.ID == id {
			return r, true
		}
	}
	return Reward{}, false
}
