package syncer

import (
	"hotelsphere/shared/timezone"
	"sync"
	"time"
)

type Status string

const (
	StatusOK      Status = "OK"
	StatusError   Status = "ERROR"
	StatusSyncing Status = "SYNCING"
)

// Health is the process-wide sync indicator surfaced to operators. It never blocks local work.
type Health struct {
	Status        Status    `json:"status"`
	LastError     string    `json:"lastError,omitempty"`
	LastErrorAt   time.Time `json:"lastErrorAt,omitzero"`
	LastSuccessAt time.Time `json:"lastSuccessAt,omitzero"`
}

type healthState struct {
	mu     sync.RWMutex
	health Health
}

func newHealthState() *healthState {
	return &healthState{health: Health{Status: StatusOK}}
}

func (h *healthState) get() Health {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.health
}

func (h *healthState) syncing() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.health.Status = StatusSyncing
}

func (h *healthState) ok() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.health.Status = StatusOK
	h.health.LastError = ""
	h.health.LastSuccessAt = timezone.Now()
}

func (h *healthState) fail(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.health.Status = StatusError
	h.health.LastErrorAt = timezone.Now()

	if err != nil {
		h.health.LastError = err.Error()
	}
}
