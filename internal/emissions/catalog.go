package emissions

import (
	"errors"
	"fmt"
	"strings"
)

// Catalog is an immutable set of activities partitioned into categories.
// It is safe for concurrent use.
type Catalog struct {
	activities []Activity
	index      map[string]int
}

// NewCatalog registers defs and assigns each to the category whose member
// list names its ID.
//
// Every definition must appear in exactly one category's member list and
// every member must name a definition. Any violation is returned as an
// error wrapping ErrDuplicateActivity, ErrUnassignedActivity,
// ErrUnregisteredMember or ErrInvalidDefinition; all violations are joined.
//
// Activities keep the order of defs.
func NewCatalog(defs []Definition, members map[Category][]string) (*Catalog, error) {
	var errs []error

	defined := make(map[string]bool, len(defs))
	for _, d := range defs {
		switch {
		case strings.TrimSpace(d.ID) == "":
			errs = append(errs, fmt.Errorf("%w: empty ID (name %q)", ErrInvalidDefinition, d.Name))
			continue
		case strings.TrimSpace(d.Name) == "":
			errs = append(errs, fmt.Errorf("%w: %s has no name", ErrInvalidDefinition, d.ID))
		case d.Convert == nil:
			errs = append(errs, fmt.Errorf("%w: %s has no conversion", ErrInvalidDefinition, d.ID))
		}
		if defined[d.ID] {
			errs = append(errs, fmt.Errorf("%w: %s defined twice", ErrDuplicateActivity, d.ID))
		}
		defined[d.ID] = true
	}

	assigned := make(map[string]Category, len(defs))
	for _, c := range Categories() {
		for _, id := range members[c] {
			if prev, ok := assigned[id]; ok {
				errs = append(errs, fmt.Errorf("%w: %s listed in %s and %s", ErrDuplicateActivity, id, prev, c))
				continue
			}
			assigned[id] = c
			if !defined[id] {
				errs = append(errs, fmt.Errorf("%w: %s in %s", ErrUnregisteredMember, id, c))
			}
		}
	}
	for c := range members {
		if !c.Valid() {
			errs = append(errs, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c)))
		}
	}

	cat := &Catalog{
		activities: make([]Activity, 0, len(defs)),
		index:      make(map[string]int, 2*len(defs)),
	}
	for _, d := range defs {
		c, ok := assigned[d.ID]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnassignedActivity, d.ID))
			continue
		}
		if _, seen := cat.index[strings.ToLower(d.ID)]; seen {
			continue
		}
		cat.index[strings.ToLower(d.ID)] = len(cat.activities)
		cat.index[strings.ToLower(d.Name)] = len(cat.activities)
		cat.activities = append(cat.activities, Activity{
			ID:       d.ID,
			Name:     d.Name,
			Prompt:   d.Prompt,
			Unit:     d.Unit,
			Category: c,
			convert:  d.Convert,
		})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cat, nil
}

// Activities returns all activities in registration order.
func (c *Catalog) Activities() []Activity {
	out := make([]Activity, len(c.activities))
	copy(out, c.activities)
	return out
}

// Members returns the activities of one category in registration order.
func (c *Catalog) Members(cat Category) []Activity {
	var out []Activity
	for _, a := range c.activities {
		if a.Category == cat {
			out = append(out, a)
		}
	}
	return out
}

// Len returns the number of registered activities.
func (c *Catalog) Len() int {
	return len(c.activities)
}

// Lookup finds an activity by ID or display name, ignoring case.
func (c *Catalog) Lookup(nameOrID string) (Activity, bool) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(nameOrID))]
	if !ok {
		return Activity{}, false
	}
	return c.activities[i], true
}

// Convert parses raw as a quantity of the named activity and returns its
// emissions. Unparseable raw input yields 0 with no error; only an unknown
// activity is an error.
func (c *Catalog) Convert(nameOrID, raw string) (float64, error) {
	a, ok := c.Lookup(nameOrID)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownActivity, nameOrID)
	}
	return a.Emissions(raw), nil
}
