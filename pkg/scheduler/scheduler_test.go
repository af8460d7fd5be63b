package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mvero/actiond/pkg/action"
	"github.com/mvero/actiond/pkg/transport"
)

// fakeSender records every payload it is asked to transmit.
type fakeSender struct {
	mu        sync.Mutex
	sent      [][]byte
	connected bool
}

func newFakeSender() *fakeSender {
	return &fakeSender{connected: true}
}

func (f *fakeSender) Send(ctx context.Context, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.connected {
		return transport.ErrNotConnected
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	f.sent = append(f.sent, cp)
	return nil
}

func (f *fakeSender) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func (f *fakeSender) Close() error { return nil }

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func newAction(id int, mode action.TimerMode) *action.Action {
	a := action.New(id)
	a.SetTitle("test")
	a.SetTxData("ping")
	a.SetMode(mode)
	a.SetTimerIntervalMs(10)
	return a
}

func TestTrigger_SendsPayloadOnce(t *testing.T) {
	sender := newFakeSender()
	s := New(sender)
	defer s.StopAll()

	a := newAction(1, action.TimerOff)
	a.SetEOLSequence(`\n`)

	if err := s.Trigger(context.Background(), a); err != nil {
		t.Fatalf("trigger failed: %v", err)
	}

	if sender.count() != 1 {
		t.Fatalf("expected 1 transmission, got %d", sender.count())
	}
	if got := string(sender.sent[0]); got != "ping\n" {
		t.Errorf("expected payload %q, got %q", "ping\n", got)
	}
	if s.Running(a.ID()) {
		t.Error("timer must stay off for TimerOff actions")
	}
}

func TestTrigger_FailedSendLeavesTimerAlone(t *testing.T) {
	sender := newFakeSender()
	sender.connected = false
	s := New(sender)
	defer s.StopAll()

	a := newAction(1, action.TimerToggleOnTrigger)
	if err := s.Trigger(context.Background(), a); err == nil {
		t.Fatal("expected error from disconnected sender")
	}
	if s.Running(a.ID()) {
		t.Error("failed trigger must not start the timer")
	}
}

func TestTrigger_StartOnTrigger(t *testing.T) {
	sender := newFakeSender()
	s := New(sender)
	defer s.StopAll()

	a := newAction(2, action.TimerStartOnTrigger)

	if err := s.Trigger(context.Background(), a); err != nil {
		t.Fatal(err)
	}
	if !s.Running(a.ID()) {
		t.Fatal("first trigger must start the timer")
	}

	// Later triggers transmit but do not touch the timer.
	if err := s.Trigger(context.Background(), a); err != nil {
		t.Fatal(err)
	}
	if !s.Running(a.ID()) {
		t.Error("second trigger must leave the timer running")
	}
}

func TestTrigger_ToggleOnTrigger(t *testing.T) {
	sender := newFakeSender()
	s := New(sender)
	defer s.StopAll()

	a := newAction(3, action.TimerToggleOnTrigger)
	ctx := context.Background()

	if err := s.Trigger(ctx, a); err != nil {
		t.Fatal(err)
	}
	if !s.Running(a.ID()) {
		t.Fatal("first trigger must start the timer")
	}

	if err := s.Trigger(ctx, a); err != nil {
		t.Fatal(err)
	}
	if s.Running(a.ID()) {
		t.Fatal("second trigger must stop the timer")
	}

	if err := s.Trigger(ctx, a); err != nil {
		t.Fatal(err)
	}
	if !s.Running(a.ID()) {
		t.Error("third trigger must start the timer again")
	}
}

func TestOnConnect(t *testing.T) {
	sender := newFakeSender()
	s := New(sender)
	defer s.StopAll()

	auto := newAction(4, action.TimerAutoStart)

	once := newAction(5, action.TimerOff)
	once.SetAutoExecuteOnConnect(true)

	idle := newAction(6, action.TimerOff)

	s.OnConnect(context.Background(), []*action.Action{auto, once, idle})

	if !s.Running(auto.ID()) {
		t.Error("AutoStart timer must run after connect")
	}
	if s.Running(once.ID()) || s.Running(idle.ID()) {
		t.Error("non-AutoStart actions must not gain timers")
	}
	// Exactly one immediate transmission: the auto-execute action.
	if sender.count() != 1 {
		t.Errorf("expected 1 connect transmission, got %d", sender.count())
	}
}

func TestTimer_TransmitsRepeatedly(t *testing.T) {
	sender := newFakeSender()
	s := New(sender)
	defer s.StopAll()

	a := newAction(7, action.TimerAutoStart)
	s.OnConnect(context.Background(), []*action.Action{a})

	deadline := time.After(2 * time.Second)
	for sender.count() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected repeated transmissions, got %d", sender.count())
		case <-time.After(5 * time.Millisecond):
		}
	}

	s.StopTimer(a.ID())
	if s.Running(a.ID()) {
		t.Error("timer must stop")
	}
}

func TestSubscribe_ReceivesEvents(t *testing.T) {
	sender := newFakeSender()
	s := New(sender)
	defer s.StopAll()

	ch := s.Subscribe()
	defer s.Unsubscribe(ch)

	a := newAction(8, action.TimerOff)
	if err := s.Trigger(context.Background(), a); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-ch:
		if ev.ActionID != 8 || ev.Source != SourceManual {
			t.Errorf("unexpected event: %+v", ev)
		}
		if ev.Bytes != len("ping") {
			t.Errorf("expected %d bytes, got %d", len("ping"), ev.Bytes)
		}
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}
