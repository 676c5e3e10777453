package inspector

import "time"

// Config configures the synchronization loop.
type Config struct {
	// RefreshInterval is the delay between a response and the next request for the same element.
	RefreshInterval time.Duration `mapstructure:"refresh-interval"`

	// Strict makes a malformed dehydrated payload panic instead of surfacing
	// ErrSnapshotUnavailable. Meant for development builds.
	Strict bool `mapstructure:"strict"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		RefreshInterval: time.Second,
	}
}
