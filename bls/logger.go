package bls

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logMu  sync.RWMutex
	logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "bls").Logger()
)

// SetLogger overrides the package-level logger. Verification routines never
// log (spec.md §7 treats them as pure boolean predicates); Init, threshold
// share derivation, and recovery log at Info/Debug level.
func SetLogger(l zerolog.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	logger = l
}

func log() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}
