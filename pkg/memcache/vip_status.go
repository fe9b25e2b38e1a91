package memcache

import (
	"sync"
	"time"
)

// VIPStatusCache keeps recent membership checks in process so the merchant
// gate does not hit the database on every request. Only positive results
// are cached; a revoked membership is re-checked on expiry or invalidation.
type VIPStatusCache interface {
	MarkValid(userID string, ttl time.Duration)
	IsValid(userID string) bool
	Invalidate(userID string)
}

type vipEntry struct {
	expiresAt time.Time
}

type VIPStatus struct {
	mu   sync.RWMutex
	data map[string]vipEntry
}

func NewVIPStatus() *VIPStatus {
	return &VIPStatus{
		data: make(map[string]vipEntry),
	}
}

func (s *VIPStatus) MarkValid(userID string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = vipEntry{expiresAt: time.Now().Add(ttl)}
}

func (s *VIPStatus) IsValid(userID string) bool {
	s.mu.RLock()
	e, ok := s.data[userID]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, userID)
		s.mu.Unlock()
		return false
	}
	return true
}

func (s *VIPStatus) Invalidate(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
}
