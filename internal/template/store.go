// Package template holds the immutable Template Store: the four built-in
// browser-preset records and the operations to look up, validate, and
// register them (spec.md §4.2).
//
// Grounded on the teacher's preset-selection switch
// (internal/tls/presets.go:GetClientHelloID in the retrieval pack), but
// generalized: the teacher's switch returns a utls.ClientHelloID handle to
// a fingerprint database baked into the utls library itself, whereas this
// Store owns the fingerprint data directly as model.Template values, since
// the core engine is not permitted to depend on utls (see SPEC_FULL.md §1).
package template

import (
	"sync"

	"github.com/parrotls/parrotls/internal/model"
)

const (
	NameChrome  = "chrome-like"
	NameFirefox = "firefox-like"
	NameSafari  = "safari-like"
	NameEdge    = "edge-like"
)

// Store is a process-wide registry of named Templates: the four immutable
// built-ins plus whatever custom templates callers register on top of them.
// Lookup and Names take a read lock; Register takes the write lock briefly.
type Store struct {
	mu   sync.RWMutex
	byName map[string]model.Template
}

var global = newStore()

func newStore() *Store {
	s := &Store{byName: make(map[string]model.Template, 8)}
	for _, t := range []model.Template{ChromeLike(), FirefoxLike(), SafariLike(), EdgeLike()} {
		s.byName[t.Name] = t.Clone()
	}
	return s
}

// Global returns the process-wide Store seeded with the four built-in
// presets.
func Global() *Store { return global }

// Lookup returns a deep copy of the named template, if one is registered.
func (s *Store) Lookup(name string) (model.Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.byName[name]
	if !ok {
		return model.Template{}, false
	}
	return t.Clone(), true
}

// Register validates t and adds it under t.Name. Registering over one of
// the four built-in names is a template-invariant error: built-ins are immutable
// for the lifetime of the process.
func (s *Store) Register(t model.Template) error {
	if err := Validate(t); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, isBuiltin := builtinNames[t.Name]; isBuiltin {
		return model.NewTemplateInvariantError(t.Name, "cannot override a built-in preset name")
	}
	s.byName[t.Name] = t.Clone()
	return nil
}

var builtinNames = map[string]struct{}{
	NameChrome:  {},
	NameFirefox: {},
	NameSafari:  {},
	NameEdge:    {},
}

// Names returns all known template names: the four built-ins first in a
// fixed order, then custom names in no particular order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.byName))
	for _, n := range []string{NameChrome, NameFirefox, NameSafari, NameEdge} {
		if _, ok := s.byName[n]; ok {
			out = append(out, n)
		}
	}
	for n := range s.byName {
		if _, ok := builtinNames[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}

