package models

import (
	"fmt"
	"strings"
	"sync"
)

// DateEvents is one EventStore entry: a date key and its labels in insertion order.
type DateEvents struct {
	Key    string
	Labels []string
}

// EventStore is an append-only multimap from date key to event labels.
// Keys are remembered in the order they first received a label.
type EventStore struct {
	mu     sync.RWMutex
	labels map[string][]string
	order  []string
}

// NewEventStore creates an empty store
func NewEventStore() *EventStore {
	return &EventStore{
		labels: make(map[string][]string),
		order:  make([]string, 0),
	}
}

// Append adds label to the key's sequence and returns a copy of the updated sequence.
// Duplicates are kept.
func (s *EventStore) Append(key, label string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.labels[key]
	if !ok {
		s.order = append(s.order, key)
	}
	s.labels[key] = append(existing, label)

	return cloneLabels(s.labels[key])
}

// Labels returns a copy of the labels stored for key.
func (s *EventStore) Labels(key string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	labels, ok := s.labels[key]
	if !ok {
		return nil, false
	}
	return cloneLabels(labels), true
}

// Has reports whether key has at least one event
func (s *EventStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.labels[key]
	return ok
}

// Len returns the number of dates holding at least one event.
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

// Entries returns every date with its labels, in first-insertion order of the dates.
func (s *EventStore) Entries() []DateEvents {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]DateEvents, 0, len(s.order))
	for _, key := range s.order {
		entries = append(entries, DateEvents{
			Key:    key,
			Labels: cloneLabels(s.labels[key]),
		})
	}
	return entries
}

// Summary renders the store as "key: label1, label2" lines, one per date.
func (s *EventStore) Summary() string {
	entries := s.Entries()
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s: %s", entry.Key, strings.Join(entry.Labels, ", ")))
	}
	return strings.Join(lines, "\n")
}

func cloneLabels(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}
