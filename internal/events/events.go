package events

import (
	"context"
	"time"
)

// RecordEvent describes one content save or delete. The Discord bridge
// consumes these to announce changes in chat.
type RecordEvent struct {
	Kind   string    `json:"kind"`
	ID     uint      `json:"id"`
	Action string    `json:"action"` // saved, deleted
	At     time.Time `json:"at"`
}

type Publisher interface {
	PublishRecordChange(ctx context.Context, event *RecordEvent) error
	Close()
}

// Nop drops every event. Used when no broker is configured and in tests.
type Nop struct {
}

func NewNop() Nop {
	return Nop{}
}

func (n Nop) PublishRecordChange(ctx context.Context, event *RecordEvent) error {
	return nil
}

func (n Nop) Close() {
}
