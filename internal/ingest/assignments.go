// Package ingest turns user input into emissions.Observations: --set
// assignments, YAML or JSON observation files, and interactive prompts.
package ingest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/footprint/internal/emissions"
)

// keyValueParts is the expected number of parts when splitting key=value strings.
const keyValueParts = 2

// Input size limits.
const (
	maxAssignments = 100
	maxKeyLen      = 128
	maxValueLen    = 1024
)

// ParseAssignments parses activity=quantity pairs as given to --set. The
// key is kept as written; the quantity is kept verbatim apart from
// surrounding whitespace, so "abc" is accepted here and later converts to 0.
// Assigning the same key twice keeps the last value.
func ParseAssignments(pairs []string) (emissions.Observations, error) {
	if len(pairs) > maxAssignments {
		return nil, fmt.Errorf("%w: too many assignments: %d (max %d)", ErrInvalidAssignment, len(pairs), maxAssignments)
	}

	obs := make(emissions.Observations, len(pairs))
	for _, p := range pairs {
		parts := strings.SplitN(p, "=", keyValueParts)
		if len(parts) != keyValueParts {
			return nil, fmt.Errorf("%w: %q: expected activity=quantity", ErrInvalidAssignment, p)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			return nil, fmt.Errorf("%w: activity cannot be empty in %q", ErrInvalidAssignment, p)
		}
		if len(key) > maxKeyLen {
			return nil, fmt.Errorf("%w: activity too long: %d bytes (max %d)", ErrInvalidAssignment, len(key), maxKeyLen)
		}
		if len(value) > maxValueLen {
			return nil, fmt.Errorf("%w: quantity too large for %q: %d bytes (max %d)",
				ErrInvalidAssignment, key, len(value), maxValueLen)
		}
		obs[key] = value
	}
	return obs, nil
}

// MergeObservations layers obs left to right, later layers winning. Keys
// are resolved against catalog and the result is keyed by activity ID. A
// key naming no activity, or two keys in one layer naming the same
// activity, is an error.
func MergeObservations(catalog *emissions.Catalog, layers ...emissions.Observations) (emissions.Observations, error) {
	out := emissions.Observations{}
	var errs []error
	for _, layer := range layers {
		seen := make(map[string]string, len(layer))
		for key, value := range layer {
			a, ok := catalog.Lookup(key)
			if !ok {
				errs = append(errs, fmt.Errorf("%w: %q", emissions.ErrUnknownActivity, key))
				continue
			}
			if prev, dup := seen[a.ID]; dup {
				errs = append(errs, fmt.Errorf("%w: %q and %q", emissions.ErrDuplicateActivity, prev, key))
				continue
			}
			seen[a.ID] = key
			out[a.ID] = value
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}
