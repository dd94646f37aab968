package session

import (
	"questa/internal/config"
	"questa/internal/models"
)

// GeneratePlan fills a target duration with focus segments, inserting a
// short break after each focus block except every 4th, which earns a long
// break. The loop stops the moment the target is met: a break is only
// inserted when more focus time is still needed after it, so a plan never
// ends in a break.
//
// With 25/5/15 defaults: 60 minutes -> [focus break focus], 100 minutes ->
// [focus break focus break focus break focus].
func GeneratePlan(targetMinutes, focusMin, breakMin, longBreakMin int) []models.TimerMode {
	if targetMinutes <= 0 || focusMin <= 0 || breakMin < 0 || longBreakMin < 0 {
		return nil
	}
	if targetMinutes > config.MaxPlanTargetMinutes {
		targetMinutes = config.MaxPlanTargetMinutes
	}

	var plan []models.TimerMode
	accumulated := 0
	focusCount := 0

	for accumulated < targetMinutes {
		plan = append(plan, models.ModeFocus)
		accumulated += focusMin
		focusCount++

		if accumulated >= targetMinutes {
			break
		}

		breakMode, breakLen := models.ModeBreak, breakMin
		if focusCount%config.FocusBlocksPerLongBreak == 0 {
			breakMode, breakLen = models.ModeLongBreak, longBreakMin
		}
		if accumulated+breakLen >= targetMinutes {
			break
		}
		plan = append(plan, breakMode)
		accumulated += breakLen
	}
	return plan
}

// PlanMinutes sums the full length of every segment in a plan.
func PlanMinutes(plan []models.TimerMode, focusMin, breakMin, longBreakMin int) int {
	total := 0
	for _, mode := range plan {
		total += models.SegmentSeconds(mode, focusMin, breakMin, longBreakMin) / 60
	}
	return total
}
