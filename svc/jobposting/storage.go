package jobposting

import (
	"bytes"
	"context"
	"maps"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Storage persists validated job postings.
type Storage interface {
	// Insert stores a new posting. The posting already carries its ID.
	Insert(ctx context.Context, posting *JobPosting) error

	// Replace overwrites an existing posting.
	// Returns ErrNotFound if no posting with posting.ID exists.
	Replace(ctx context.Context, posting *JobPosting) error

	// Get loads a posting by ID.
	// Returns ErrNotFound if no posting exists.
	Get(ctx context.Context, id bson.ObjectID) (*JobPosting, error)
}

// MemoryStorage is an in-process Storage for tests and local tooling.
type MemoryStorage struct {
	mu       sync.RWMutex
	postings map[bson.ObjectID]JobPosting
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{postings: make(map[bson.ObjectID]JobPosting)}
}

func (m *MemoryStorage) Insert(_ context.Context, posting *JobPosting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.postings[posting.ID] = clonePosting(posting)
	return nil
}

func (m *MemoryStorage) Replace(_ context.Context, posting *JobPosting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.postings[posting.ID]; !ok {
		return ErrNotFound
	}
	m.postings[posting.ID] = clonePosting(posting)
	return nil
}

func (m *MemoryStorage) Get(_ context.Context, id bson.ObjectID) (*JobPosting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.postings[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := clonePosting(&p)
	return &clone, nil
}

// Len reports the number of stored postings.
func (m *MemoryStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.postings)
}

// IDs returns the stored posting IDs in ascending order.
func (m *MemoryStorage) IDs() []bson.ObjectID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.SortedFunc(maps.Keys(m.postings), func(a, b bson.ObjectID) int {
		return bytes.Compare(a[:], b[:])
	})
}

// clonePosting copies the slices so stored records never alias caller memory.
func clonePosting(p *JobPosting) JobPosting {
	c := *p
	c.Skills = slices.Clone(p.Skills)
	c.TeamMembers = slices.Clone(p.TeamMembers)
	c.Questions = make([]Question, len(p.Questions))
	for i, q := range p.Questions {
		q.Questions = slices.Clone(q.Questions)
		c.Questions[i] = q
	}
	return c
}
