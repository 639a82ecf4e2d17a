// Package timezone is the static lookup of supported timezone identifiers.
package timezone

import (
	_ "embed"
	"sort"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/jdziat/schedule-eta/pkg/core"
)

//go:embed zones.txt
var zonesFile string

// Set answers whether a timezone identifier is supported.
type Set interface {
	Contains(name string) bool
}

// StaticSet is an immutable Set backed by a fixed list of names.
type StaticSet struct {
	names map[string]struct{}
}

// NewSet returns a Set containing exactly names.
func NewSet(names ...string) *StaticSet {
	s := &StaticSet{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			s.names[n] = struct{}{}
		}
	}
	return s
}

// Contains reports whether name is in the set. Matching is exact.
func (s *StaticSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Names returns the sorted identifiers in the set.
func (s *StaticSet) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

var supported = NewSet(strings.Split(zonesFile, "\n")...)

// Supported returns the built-in set of supported identifiers.
func Supported() *StaticSet {
	return supported
}

var locations sync.Map // name -> *time.Location

// Load validates name against set and returns its location. The empty name
// is not accepted; callers that allow "no timezone" check for it first.
func Load(set Set, name string) (*time.Location, error) {
	if name == "" {
		return nil, core.Invalid(core.ErrMissingTimezone, "")
	}
	if !set.Contains(name) {
		return nil, core.Invalid(core.ErrUnknownTimezone, name)
	}
	if loc, ok := locations.Load(name); ok {
		return loc.(*time.Location), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &core.ValidationError{Reason: core.ErrUnknownTimezone, Value: name, Detail: err.Error()}
	}
	locations.Store(name, loc)
	return loc, nil
}
