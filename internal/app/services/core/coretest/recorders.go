package coretest

import (
	"context"
	"doctrack-service/internal/app/contracts"
	"sync"
)

type PublishedEvent struct {
	Type    string
	Payload interface{}
}

// EventRecorder keeps every published event in order.
type EventRecorder struct {
	mu     sync.Mutex
	events []PublishedEvent
	Err    error
}

var _ contracts.EventPublisher = (*EventRecorder)(nil)

func (r *EventRecorder) Publish(ctx context.Context, eventType string, payload interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, PublishedEvent{Type: eventType, Payload: payload})
	return r.Err
}

func (r *EventRecorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, 0, len(r.events))
	for _, event := range r.events {
		types = append(types, event.Type)
	}
	return types
}
