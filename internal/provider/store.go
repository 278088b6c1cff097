package provider

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrInteractionNotFound = errors.New("interaction not found")
	ErrInteractionExpired  = errors.New("interaction expired")
	ErrAuthCodeNotFound    = errors.New("authorization code not found")
	ErrAuthCodeExpired     = errors.New("authorization code expired")
	ErrAuthCodeConsumed    = errors.New("authorization code already consumed")
)

// Store keeps the per-flow state between the authorize, interaction and token
// steps: pending validated requests and one-time authorization codes.
type Store interface {
	SavePendingRequest(record AuthRequestRecord) error
	ConsumePendingRequest(uid string, now time.Time) (AuthRequestRecord, error)

	SaveAuthCode(record AuthCodeRecord) error
	ConsumeAuthCode(rawCode string, now time.Time) (AuthCodeRecord, error)
}

type InMemoryStore struct {
	mu        sync.Mutex
	pending   map[string]AuthRequestRecord
	authCodes map[string]AuthCodeRecord
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		pending:   make(map[string]AuthRequestRecord),
		authCodes: make(map[string]AuthCodeRecord),
	}
}

func (s *InMemoryStore) SavePendingRequest(record AuthRequestRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[record.UID] = record
	return nil
}

func (s *InMemoryStore) ConsumePendingRequest(uid string, now time.Time) (AuthRequestRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.pending[uid]
	if !ok {
		return AuthRequestRecord{}, ErrInteractionNotFound
	}
	delete(s.pending, uid)
	if now.After(record.ExpiresAt) {
		return AuthRequestRecord{}, ErrInteractionExpired
	}
	return record, nil
}

func (s *InMemoryStore) SaveAuthCode(record AuthCodeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authCodes[record.CodeHash] = record
	return nil
}

func (s *InMemoryStore) ConsumeAuthCode(rawCode string, now time.Time) (AuthCodeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hash := sha256Hex(rawCode)
	record, ok := s.authCodes[hash]
	if !ok {
		return AuthCodeRecord{}, ErrAuthCodeNotFound
	}
	if record.ConsumedAt != nil {
		return AuthCodeRecord{}, ErrAuthCodeConsumed
	}
	if now.After(record.ExpiresAt) {
		return AuthCodeRecord{}, ErrAuthCodeExpired
	}
	consumed := now.UTC()
	record.ConsumedAt = &consumed
	s.authCodes[hash] = record
	return record, nil
}
