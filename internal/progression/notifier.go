package progression

import (
	"fmt"
	"sync"
)

// Notifier receives fire-and-forget economy events for user-facing display.
// The ledger never consumes a response.
type Notifier interface {
	ExperienceGranted(amount int64, source string)
	CurrencyGranted(amount int64)
	LevelUp(oldLevel, newLevel int)
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) ExperienceGranted(int64, string) {}
func (NopNotifier) CurrencyGranted(int64)           {}
func (NopNotifier) LevelUp(int, int)                {}

// Feed buffers formatted event lines for a UI to drain on its next frame.
// Safe for concurrent use.
type Feed struct {
	mu    sync.Mutex
	lines []string
}

func (f *Feed) ExperienceGranted(amount int64, source string) {
	if amount == 0 {
		return
	}
	f.push(fmt.Sprintf("%+d XP (%s)", amount, source))
}

func (f *Feed) CurrencyGranted(amount int64) {
	if amount == 0 {
		return
	}
	f.push(fmt.Sprintf("%+d pts", amount))
}

func (f *Feed) LevelUp(oldLevel, newLevel int) {
	f.push(fmt.Sprintf("Level up! %d -> %d", oldLevel, newLevel))
}

// Drain returns and clears the buffered lines.
func (f *Feed) Drain() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := f.lines
	f.lines = nil
	return lines
}

func (f *Feed) push(line string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = append(f.lines, line)
}

var _ Notifier = (*Feed)(nil)
