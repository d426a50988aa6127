package remote

import (
	"hotelsphere/config"
	"os"
	"sync"

	"github.com/google/uuid"
)

var (
	fallbackID   string
	fallbackOnce sync.Once
)

// ClientID identifies this process on the change feed. Without APP_CLIENT_ID
// a host-derived id is generated once per process.
func ClientID(cfg *config.Config) string {
	if cfg != nil && cfg.App.ClientID != "" {
		return cfg.App.ClientID
	}

	fallbackOnce.Do(func() {
		host, _ := os.Hostname()
		fallbackID = host + "-" + uuid.NewString()[:8]
	})

	return fallbackID
}
