package irrigation

import (
	"sync"

	"golang.org/x/time/rate"
)

// HubLimit is the throttle applied to one hub's train and predict calls.
type HubLimit struct {
	Rate     rate.Limit `json:"rate"`
	Burst    int        `json:"burst"`
	Override bool       `json:"override"`
}

// RateLimiterStore keeps one token bucket per hub. Hubs without an override
// share the store defaults.
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	overrides    map[string]struct{}
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		overrides:    make(map[string]struct{}),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(hubID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[hubID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[hubID] = limiter
	}
	return limiter
}

// SetLimiter overrides the hub's rate and burst. An existing bucket is retuned
// in place so tokens already spent stay spent.
func (s *RateLimiterStore) SetLimiter(hubID string, hubRate rate.Limit, hubBurst int) HubLimit {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.retune(hubID, hubRate, hubBurst)
	s.overrides[hubID] = struct{}{}
	return s.limitsLocked(hubID)
}

// ResetLimiter drops the hub's override and puts it back on the defaults.
func (s *RateLimiterStore) ResetLimiter(hubID string) HubLimit {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.overrides[hubID]; ok {
		delete(s.overrides, hubID)
		s.retune(hubID, s.defaultRate, s.defaultBurst)
	}
	return s.limitsLocked(hubID)
}

// Limits reports what the hub is currently throttled at without creating a bucket.
func (s *RateLimiterStore) Limits(hubID string) HubLimit {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.limitsLocked(hubID)
}

func (s *RateLimiterStore) retune(hubID string, hubRate rate.Limit, hubBurst int) {
	limiter, exists := s.limiters[hubID]
	if !exists {
		s.limiters[hubID] = rate.NewLimiter(hubRate, hubBurst)
		return
	}
	limiter.SetLimit(hubRate)
	limiter.SetBurst(hubBurst)
}

func (s *RateLimiterStore) limitsLocked(hubID string) HubLimit {
	_, override := s.overrides[hubID]
	limiter, exists := s.limiters[hubID]
	if !exists {
		return HubLimit{Rate: s.defaultRate, Burst: s.defaultBurst}
	}
	return HubLimit{Rate: limiter.Limit(), Burst: limiter.Burst(), Override: override}
}

// HubLocks hands out one mutex per hub so that two retrains of the same hub never
// interleave their store writes.
type HubLocks struct {
	locks map[string]*sync.Mutex
	mu    sync.Mutex
}

func NewHubLocks() *HubLocks {
	return &HubLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *HubLocks) Lock(hubID string) func() {
	l.mu.Lock()
	m, ok := l.locks[hubID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[hubID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
