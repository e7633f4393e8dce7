package cmd

import (
	"fmt"

	"github.com/crossfeed/onboard/internal/config"
	"github.com/crossfeed/onboard/internal/store"
	"github.com/crossfeed/onboard/internal/tracker"
)

// openEngine builds a tracker engine on the configured store backend.
// The returned cleanup func releases backend resources and is always
// non-nil.
func openEngine(baseDir string) (*tracker.Engine, func(), error) {
	noop := func() {}

	cfg, err := config.Load(baseDir)
	if err != nil {
		// A broken config should not strand the user: fall back to the
		// default backend.
		cfg = &config.Config{}
	}
	backend, err := cfg.Backend()
	if err != nil {
		return nil, noop, err
	}

	switch backend {
	case config.BackendSQLite:
		st, err := store.OpenSQLite(baseDir)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite store: %w", err)
		}
		return tracker.New(st), func() { st.Close() }, nil
	default:
		return tracker.New(store.NewFileStore(baseDir)), noop, nil
	}
}
