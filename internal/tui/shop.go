package tui

import (
	"context"
	"fmt"

	"questa/internal/models"
	"questa/internal/util"
)

// buyReward purchases the idx-th catalog entry. Level-locked entries are
// listed but not purchasable; affordability is checked before spending since
// the ledger itself only clamps.
func (m *DashboardModel) buyReward(idx int) {
	if idx < 0 || idx >= len(models.Catalog) {
		return
	}
	r := models.Catalog[idx]

	if m.app.Ledger.Level() < r.UnlockLevel {
		m.Message = fmt.Sprintf("%s unlocks at level %d.", r.Name, r.UnlockLevel)
		return
	}
	if m.app.Ledger.Currency() < r.Cost {
		m.Message = fmt.Sprintf("Not enough points for %s (%d needed).", r.Name, r.Cost)
		return
	}

	m.app.Ledger.SpendCurrency(r.Cost)
	now := m.clock()

	if r.Type == models.RewardPowerup && r.BoostKind != "" {
		m.app.Boosts.Activate(r.BoostKind, r.BoostFactor, r.BoostFor, now)
	}

	itemID := r.ID
	record := func(ctx context.Context) {
		util.LogError("record purchase", m.app.Repo.AddInventoryItem(ctx, itemID, now))
	}
	if m.app.Queue != nil {
		m.app.Queue.Enqueue(record)
	} else {
		record(m.ctx)
	}
	m.Message = fmt.Sprintf("Purchased %s.", r.Name)
}
