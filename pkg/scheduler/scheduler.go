// Package scheduler runs the timer policy declared on actions: it owns the
// repeating triggers, the on-connect behavior and the manual trigger path.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mvero/actiond/pkg/action"
	"github.com/mvero/actiond/pkg/transport"
)

// TxEvent describes one transmission performed on behalf of an action.
type TxEvent struct {
	ActionID  int       `json:"action_id"`
	Title     string    `json:"title"`
	Source    string    `json:"source"` // manual, timer or connect
	Bytes     int       `json:"bytes"`
	Timestamp time.Time `json:"timestamp"`
}

// Transmission sources
const (
	SourceManual  = "manual"
	SourceTimer   = "timer"
	SourceConnect = "connect"
)

// Scheduler transmits action payloads through a Sender and keeps one
// repeating timer per action. Actions themselves stay single-owner: a
// running timer works on a snapshot copy taken when it starts, so edits to
// an action take effect the next time its timer starts.
type Scheduler struct {
	sender transport.Sender

	mu     sync.Mutex
	timers map[int]chan struct{}

	subMu sync.Mutex
	subs  map[chan TxEvent]struct{}
}

// New creates a Scheduler that writes through sender.
func New(sender transport.Sender) *Scheduler {
	return &Scheduler{
		sender: sender,
		timers: make(map[int]chan struct{}),
		subs:   make(map[chan TxEvent]struct{}),
	}
}

// Trigger performs one manual invocation of the action: the payload is
// transmitted once and the action's timer mode is applied. StartOnTrigger
// starts the repeating timer on the first invocation only; ToggleOnTrigger
// flips it on every invocation. A failed transmission leaves timers alone.
func (s *Scheduler) Trigger(ctx context.Context, a *action.Action) error {
	if err := s.send(ctx, a, SourceManual); err != nil {
		return err
	}

	switch a.Mode() {
	case action.TimerStartOnTrigger:
		s.startTimer(a)
	case action.TimerToggleOnTrigger:
		if s.Running(a.ID()) {
			s.StopTimer(a.ID())
		} else {
			s.startTimer(a)
		}
	}

	return nil
}

// OnConnect applies connection-time behavior for every action: actions with
// autoExecuteOnConnect transmit once, and AutoStart timers begin running.
func (s *Scheduler) OnConnect(ctx context.Context, actions []*action.Action) {
	for _, a := range actions {
		if a.AutoExecuteOnConnect() {
			if err := s.send(ctx, a, SourceConnect); err != nil {
				log.Warn().Err(err).Int("action", a.ID()).Msg("Auto-execute failed")
			}
		}
		if a.Mode() == action.TimerAutoStart {
			s.startTimer(a)
		}
	}
}

// Running reports whether the action's repeating timer is active.
func (s *Scheduler) Running(actionID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[actionID]
	return ok
}

// StopTimer stops the action's repeating timer if it is running.
func (s *Scheduler) StopTimer(actionID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked(actionID)
}

// StopAll stops every running timer.
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.timers {
		s.stopLocked(id)
	}
}

// Subscribe returns a channel receiving transmission events. Slow consumers
// miss events rather than blocking the scheduler.
func (s *Scheduler) Subscribe() chan TxEvent {
	ch := make(chan TxEvent, 16)
	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()
	return ch
}

// Unsubscribe removes a subscription and closes the channel.
func (s *Scheduler) Unsubscribe(ch chan TxEvent) {
	s.subMu.Lock()
	if _, ok := s.subs[ch]; ok {
		delete(s.subs, ch)
		close(ch)
	}
	s.subMu.Unlock()
}

func (s *Scheduler) startTimer(a *action.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.timers[a.ID()]; ok {
		return
	}

	interval := time.Duration(a.TimerIntervalMs()) * time.Millisecond
	if interval <= 0 {
		interval = action.DefaultTimerIntervalMs * time.Millisecond
	}

	stop := make(chan struct{})
	s.timers[a.ID()] = stop

	snapshot := *a
	go s.run(&snapshot, interval, stop)

	log.Info().
		Int("action", a.ID()).
		Str("title", a.Title()).
		Dur("interval", interval).
		Msg("Action timer started")
}

func (s *Scheduler) run(a *action.Action, interval time.Duration, stop chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := s.send(context.Background(), a, SourceTimer); err != nil {
				log.Warn().Err(err).Int("action", a.ID()).Msg("Timed transmission failed")
			}
		}
	}
}

func (s *Scheduler) stopLocked(actionID int) {
	stop, ok := s.timers[actionID]
	if !ok {
		return
	}
	close(stop)
	delete(s.timers, actionID)
	log.Info().Int("action", actionID).Msg("Action timer stopped")
}

func (s *Scheduler) send(ctx context.Context, a *action.Action, source string) error {
	data := a.TxByteArray()
	if err := s.sender.Send(ctx, data); err != nil {
		return err
	}

	s.publish(TxEvent{
		ActionID:  a.ID(),
		Title:     a.Title(),
		Source:    source,
		Bytes:     len(data),
		Timestamp: time.Now(),
	})
	return nil
}

func (s *Scheduler) publish(ev TxEvent) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
