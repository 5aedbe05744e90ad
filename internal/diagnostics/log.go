// Package diagnostics keeps an append-only trace of gateway traffic.
// Recording is best-effort and never fails or blocks the caller.
package diagnostics

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"CardCheckout/pkg/correlation"
)

type Entry struct {
	Time          time.Time       `json:"time"`
	Event         string          `json:"event"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Data          json.RawMessage `json:"data,omitempty"`
}

type Sink interface {
	Write(ctx context.Context, e Entry) error
}

// QueueSize bounds the entries waiting for Run. Record drops entries once it is full.
const QueueSize = 256

type queued struct {
	ctx   context.Context
	entry Entry
}

// Log hands entries to a background writer so sinks never slow the caller down.
type Log struct {
	enabled bool
	sinks   []Sink
	now     func() time.Time
	queue   chan queued
}

func New(enabled bool, sinks ...Sink) *Log {
	return &Log{enabled: enabled, sinks: sinks, now: time.Now, queue: make(chan queued, QueueSize)}
}

// Record encodes data now and queues it without blocking.
func (l *Log) Record(ctx context.Context, event string, data any) {
	if !l.enabled || len(l.sinks) == 0 {
		return
	}

	raw, err := json.Marshal(data)
	if err != nil {
		slog.WarnContext(ctx, "Diagnostic entry not encodable", "event", event, "error", err)
		return
	}

	e := Entry{
		Time:          l.now(),
		Event:         event,
		CorrelationID: correlation.FromContext(ctx),
		Data:          raw,
	}

	select {
	case l.queue <- queued{ctx: context.WithoutCancel(ctx), entry: e}:
	default:
		slog.WarnContext(ctx, "Diagnostic queue full, entry dropped", "event", event)
	}
}

// Run writes queued entries until ctx is done, then flushes what is left.
func (l *Log) Run(ctx context.Context) error {
	for {
		select {
		case q := <-l.queue:
			l.write(q)
		case <-ctx.Done():
			l.flush()
			return nil
		}
	}
}

func (l *Log) flush() {
	for {
		select {
		case q := <-l.queue:
			l.write(q)
		default:
			return
		}
	}
}

func (l *Log) write(q queued) {
	defer func() {
		if r := recover(); r != nil {
			slog.WarnContext(q.ctx, "Diagnostic log panicked", "event", q.entry.Event, "panic", r)
		}
	}()

	for _, s := range l.sinks {
		if err := s.Write(q.ctx, q.entry); err != nil {
			slog.WarnContext(q.ctx, "Diagnostic sink write failed", "event", q.entry.Event, "error", err)
		}
	}
}
