package config

// Default segment lengths in minutes.
const (
	DefaultFocusMinutes     = 25
	DefaultBreakMinutes     = 5
	DefaultLongBreakMinutes = 15
)

// Experience rates per focus minute. Retroactive entries earn half the live
// rate as an anti-gaming measure.
const (
	LiveXPPerMinute   = 2
	ManualXPPerMinute = 1
)

// Progression economy.
const (
	XPCurveBase      = 100 // level = floor(sqrt(xp/XPCurveBase)) + 1
	CurrencyPerLevel = 100
	HabitCurrency    = 5
)

// Plan generation.
const (
	FocusBlocksPerLongBreak = 4
	MaxPlanTargetMinutes    = 24 * 60
)

// Database/application settings.
const (
	AppName    = "questa"
	DBFileName = "questa.db"
)

// Settings keys persisted in the settings table.
const (
	SettingPlanTargetHours = "plan_target_hours"
)

// Write-behind queue depth. Enqueue blocks once the buffer fills so write
// order always matches state-change order.
const WriteQueueDepth = 64
