// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// Package pubsub provides a small typed observer registry.
package pubsub

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// EventType represents the type of event.
type EventType int

const (
	// UpdatedEvent fires after every change of the observed value.
	UpdatedEvent EventType = iota
)

func (t EventType) String() string {
	switch t {
	case UpdatedEvent:
		return "update"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event wraps a payload with type information.
type Event[T any] struct {
	Type    EventType
	Payload T
}

// NewUpdatedEvent creates a new "update" event.
func NewUpdatedEvent[T any](payload T) Event[T] {
	return Event[T]{Type: UpdatedEvent, Payload: payload}
}

// Observer receives events from a Subject.
type Observer[T any] interface {
	Notify(Event[T])
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc[T any] func(Event[T])

// Notify calls f(e).
func (f ObserverFunc[T]) Notify(e Event[T]) {
	f(e)
}

// SubscriptionID identifies one subscription for Unsubscribe.
type SubscriptionID string

type subscription[T any] struct {
	id       SubscriptionID
	observer Observer[T]
}

// Subject keeps an ordered list of observers per event type.
//
// Publish delivers synchronously, in subscription order, to a snapshot of
// the observers taken when Publish starts. Observers may therefore
// subscribe or unsubscribe from inside Notify; the change takes effect with
// the next Publish.
type Subject[T any] struct {
	mu   sync.RWMutex
	subs map[EventType][]subscription[T]
}

// NewSubject creates an empty subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{
		subs: make(map[EventType][]subscription[T]),
	}
}

// Subscribe registers o for events of type t.
func (s *Subject[T]) Subscribe(t EventType, o Observer[T]) SubscriptionID {
	id := SubscriptionID(uuid.NewString())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[t] = append(s.subs[t], subscription[T]{id: id, observer: o})
	return id
}

// Unsubscribe removes a subscription. It reports whether id was found.
func (s *Subject[T]) Unsubscribe(id SubscriptionID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for t, list := range s.subs {
		for i, sub := range list {
			if sub.id != id {
				continue
			}
			// copy so that snapshots held by an in-flight Publish stay intact
			next := make([]subscription[T], 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			s.subs[t] = next
			return true
		}
	}
	return false
}

// Publish delivers e to every observer subscribed to e.Type and returns the
// number of observers notified.
func (s *Subject[T]) Publish(e Event[T]) int {
	s.mu.RLock()
	snapshot := s.subs[e.Type]
	s.mu.RUnlock()

	for _, sub := range snapshot {
		sub.observer.Notify(e)
	}
	return len(snapshot)
}

// Len returns the number of observers subscribed to t.
func (s *Subject[T]) Len(t EventType) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs[t])
}
