package memcache

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers signed-out tokens until they would have
// expired anyway. In-process on purpose: one instance, human-driven
// traffic.
type RevokedTokenStore interface {
	Revoke(token string, ttl time.Duration)
	IsRevoked(token string) bool
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{data: make(map[string]time.Time)}
}

func (s *RevokedTokens) Revoke(token string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = time.Now().Add(ttl)
}

func (s *RevokedTokens) IsRevoked(token string) bool {
	s.mu.RLock()
	exp, ok := s.data[token]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if time.Now().After(exp) {
		s.mu.Lock()
		delete(s.data, token) // cleanup expired
		s.mu.Unlock()
		return false
	}
	return true
}
