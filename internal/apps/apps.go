package apps

import (
	"errors"
	"fmt"
)

// DefaultViewport is the viewport directive shared by every well-formed web
// app scenario.
const DefaultViewport = "width=device-width, initial-scale=1"

// ErrUnknownScenario is returned when a lookup names an id that is not
// registered.
var ErrUnknownScenario = errors.New("unknown scenario")

// Descriptor describes how a single scenario is rendered.
type Descriptor struct {
	Description  string  `yaml:"description" json:"description"`
	ManifestJSON bool    `yaml:"manifest_json,omitempty" json:"manifest_json,omitempty"`
	IndexJS      bool    `yaml:"index_js,omitempty" json:"index_js,omitempty"`
	Viewport     *string `yaml:"viewport,omitempty" json:"viewport,omitempty"` // nil: no viewport meta tag
	Referrer     bool    `yaml:"referrer,omitempty" json:"referrer,omitempty"`
}

// ViewportValue returns the literal viewport directive and whether one is set.
func (d Descriptor) ViewportValue() (string, bool) {
	if d.Viewport == nil {
		return "", false
	}
	return *d.Viewport, true
}

// clone returns a copy that shares no pointers with d.
func (d Descriptor) clone() Descriptor {
	if d.Viewport != nil {
		v := *d.Viewport
		d.Viewport = &v
	}
	return d
}

// Entry pairs a scenario id with its descriptor.
type Entry struct {
	ID         string `yaml:"id" json:"id"`
	Descriptor `yaml:",inline"`
}

type registry struct {
	order []string
	byID  map[string]Descriptor
}

var scenarios = build(table)

func build(entries []Entry) registry {
	r := registry{
		order: make([]string, 0, len(entries)),
		byID:  make(map[string]Descriptor, len(entries)),
	}
	for _, e := range entries {
		if _, dup := r.byID[e.ID]; dup {
			panic(fmt.Sprintf("apps: duplicate scenario %q", e.ID))
		}
		if e.Description == "" {
			panic(fmt.Sprintf("apps: scenario %q has no description", e.ID))
		}
		r.order = append(r.order, e.ID)
		r.byID[e.ID] = e.Descriptor
	}
	return r
}

// Get returns the descriptor registered under id. Unknown ids fail with an
// error wrapping ErrUnknownScenario.
func Get(id string) (Descriptor, error) {
	d, ok := scenarios.byID[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownScenario, id)
	}
	return d.clone(), nil
}

// Has reports whether id is registered.
func Has(id string) bool {
	_, ok := scenarios.byID[id]
	return ok
}

// IDs returns every registered id in declaration order. The slice is freshly
// allocated on each call.
func IDs() []string {
	ids := make([]string, len(scenarios.order))
	copy(ids, scenarios.order)
	return ids
}

// Entries returns every scenario in declaration order.
func Entries() []Entry {
	entries := make([]Entry, 0, len(scenarios.order))
	for _, id := range scenarios.order {
		entries = append(entries, Entry{ID: id, Descriptor: scenarios.byID[id].clone()})
	}
	return entries
}

// Len returns the number of registered scenarios.
func Len() int { return len(scenarios.order) }
