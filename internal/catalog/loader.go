// Package catalog loads the static plan catalog and provides the pure
// filter, summary and comparison functions used by the product pages.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/bobmcallan/insurancebuddy/internal/common"
	"github.com/bobmcallan/insurancebuddy/internal/models"
)

// ErrCatalogUnavailable is returned (wrapped) when the catalog file is
// missing or cannot be parsed.
var ErrCatalogUnavailable = errors.New("plan catalog unavailable")

// Loader owns the process-wide plan catalog. The file is read on the first
// successful call to Plans; failures are not cached so a later call retries.
type Loader struct {
	path   string
	logger *common.Logger

	mu     sync.Mutex
	plans  []models.Plan
	loaded bool
}

// NewLoader creates a loader for the catalog file at path.
func NewLoader(path string, logger *common.Logger) *Loader {
	return &Loader{path: path, logger: logger}
}

// Path returns the catalog file location.
func (l *Loader) Path() string {
	return l.path
}

// Plans returns the normalized catalog. Every successful call returns the
// same slice; callers must not modify it.
func (l *Loader) Plans() ([]models.Plan, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return l.plans, nil
	}

	start := time.Now()
	plans, err := LoadFile(l.path)
	if err != nil {
		l.logger.Warn().Str("path", l.path).Err(err).Msg("Plan catalog load failed")
		return nil, err
	}

	l.plans = plans
	l.loaded = true
	l.logger.Info().
		Str("path", l.path).
		Int("plans", len(plans)).
		Dur("elapsed", time.Since(start)).
		Msg("Plan catalog loaded")
	return l.plans, nil
}

// LoadFile reads and normalizes the catalog at path.
func LoadFile(path string) ([]models.Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses a JSON array of raw plan entries and normalizes each one.
// Either every entry is returned or an error is.
func Load(r io.Reader) ([]models.Plan, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw []map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode catalog: %v", ErrCatalogUnavailable, err)
	}

	plans := make([]models.Plan, 0, len(raw))
	for _, entry := range raw {
		plans = append(plans, Normalize(entry))
	}
	return plans, nil
}
