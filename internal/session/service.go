package session

import (
	"context"
	"time"

	"questa/internal/config"
	"questa/internal/models"
	"questa/internal/progression"
	"questa/internal/store"
	"questa/internal/util"
)

// Recorder is the slice of the persistence collaborator the session service
// writes through.
type Recorder interface {
	SaveTimerSnapshot(ctx context.Context, snap models.TimerSnapshot) error
	AppendSessionLog(ctx context.Context, entry models.SessionLog) error
}

// Service connects the timer to the economy and the store: completions turn
// into experience grants and session-log entries, snapshots flow to the
// write-behind queue. It implements Awards for its own timer.
type Service struct {
	Timer  *Timer
	ledger *progression.Ledger
	repo   Recorder
	queue  *store.Queue
}

// NewService builds the timer with this service as its completion sink.
// queue may be nil, in which case writes are applied inline.
func NewService(repo Recorder, queue *store.Queue, ledger *progression.Ledger) *Service {
	s := &Service{ledger: ledger, repo: repo, queue: queue}
	s.Timer = NewTimer(s, s.persistSnapshot)
	return s
}

// FocusCompleted awards a live focus completion at the full rate and logs it.
func (s *Service) FocusCompleted(minutes int, at time.Time) {
	s.ledger.GrantExperience(int64(minutes*config.LiveXPPerMinute), progression.SourceFocus)
	s.appendLog(models.SessionLog{CompletedAt: at, DurationMinutes: minutes, Source: models.SourceLive})
}

// FocusCredited awards partial focus time at the retroactive rate and logs
// it as a manual entry.
func (s *Service) FocusCredited(minutes int, at time.Time) {
	s.ledger.GrantExperience(int64(minutes*config.ManualXPPerMinute), progression.SourceManual)
	s.appendLog(models.SessionLog{CompletedAt: at, DurationMinutes: minutes, Source: models.SourceManual})
}

// LogManual records a retroactively entered focus session at half the live
// rate.
func (s *Service) LogManual(minutes int, at time.Time) {
	if minutes <= 0 {
		return
	}
	s.FocusCredited(minutes, at)
}

func (s *Service) appendLog(entry models.SessionLog) {
	if s.repo == nil {
		return
	}
	s.write(func(ctx context.Context) {
		util.LogError("append session log", s.repo.AppendSessionLog(ctx, entry))
	})
}

func (s *Service) persistSnapshot(snap models.TimerSnapshot) {
	if s.repo == nil {
		return
	}
	s.write(func(ctx context.Context) {
		util.LogError("save timer snapshot", s.repo.SaveTimerSnapshot(ctx, snap))
	})
}

func (s *Service) write(op func(ctx context.Context)) {
	if s.queue != nil {
		s.queue.Enqueue(op)
		return
	}
	op(context.Background())
}
