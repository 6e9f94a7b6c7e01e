package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/abdulrahman-nisar/UpliftAI/utils"
)

// MemoryStore is the in-process backend used by tests and local
// development. Documents pass through a JSON round-trip on write so that
// reads see the same value types the networked backends produce.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]Document)}
}

func (s *MemoryStore) Create(ctx context.Context, scope string) (string, error) {
	return utils.GenerateID(), nil
}

func (s *MemoryStore) Set(ctx context.Context, path string, doc Document) error {
	normalized, err := normalize(doc)
	if err != nil {
		return fmt.Errorf("encoding document at %s: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[path] = normalized
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, path string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	copy, err := normalize(doc)
	if err != nil {
		return nil, fmt.Errorf("decoding document at %s: %w", path, err)
	}
	return copy, nil
}

func (s *MemoryStore) Update(ctx context.Context, path string, fields Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[path]
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	merged := make(Document, len(doc)+len(fields))
	for k, v := range doc {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	normalized, err := normalize(merged)
	if err != nil {
		return fmt.Errorf("encoding document at %s: %w", path, err)
	}
	s.docs[path] = normalized
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[path]; !ok {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	delete(s.docs, path)
	return nil
}

func (s *MemoryStore) List(ctx context.Context, scope string) (map[string]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := scope + "/"
	docs := make(map[string]Document)
	for path, doc := range s.docs {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		id := path[len(prefix):]
		if strings.Contains(id, "/") {
			continue
		}
		copy, err := normalize(doc)
		if err != nil {
			return nil, fmt.Errorf("decoding document at %s: %w", path, err)
		}
		docs[id] = copy
	}
	return docs, nil
}

func normalize(doc Document) (Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
