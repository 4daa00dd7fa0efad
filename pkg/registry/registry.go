// Package registry provides named predicates, so that checks can be
// described by strings such as "string" or "string|undefined".
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"digital.vasic.assafely/pkg/narrow"
)

// ErrUnknownPredicate is returned when a name is not registered.
var ErrUnknownPredicate = errors.New("unknown predicate")

// Registry defines the interface for managing named predicates.
type Registry interface {
	// Register adds a predicate under name. Returns an error
	// if the name is already registered or invalid.
	Register(name string, predicate narrow.Predicate[any]) error

	// Alias makes alias resolve to the predicate registered
	// under target.
	Alias(alias, target string) error

	// Lookup returns the predicate registered under name.
	Lookup(name string) (narrow.Predicate[any], bool)

	// Has reports whether name is registered.
	Has(name string) bool

	// Names returns all registered names sorted.
	Names() []string
}

// DefaultRegistry is the standard Registry implementation. It is
// safe for concurrent use.
type DefaultRegistry struct {
	mu         sync.RWMutex
	predicates map[string]narrow.Predicate[any]
}

// New creates a DefaultRegistry with the built-in predicates
// pre-registered.
func New() *DefaultRegistry {
	r := &DefaultRegistry{
		predicates: make(map[string]narrow.Predicate[any]),
	}
	r.registerDefaults()
	return r
}

// Default is the package-level default registry instance.
var Default = New()

// registerDefaults registers the built-in predicates.
func (r *DefaultRegistry) registerDefaults() {
	r.predicates["string"] = narrow.Erase(narrow.IsString)
	r.predicates["boolean"] = narrow.Erase(narrow.IsBoolean)
	r.predicates["number"] = narrow.Erase(narrow.IsNumber)
	r.predicates["symbol"] = narrow.Erase(narrow.IsSymbol)
	r.predicates["bigint"] = narrow.Erase(narrow.IsBigint)
	r.predicates["undefined"] = narrow.IsUndefined
	r.predicates["null"] = narrow.IsNull
	r.predicates["date"] = narrow.Erase(narrow.IsDate)
	r.predicates["array"] = narrow.Erase(narrow.IsArray(
		narrow.Predicate[any](func(any) bool { return true }),
	))
	r.predicates["string[]"] = narrow.Erase(narrow.IsStringArray)
}

// Register adds a predicate under name.
func (r *DefaultRegistry) Register(
	name string,
	predicate narrow.Predicate[any],
) error {
	if err := validateName(name); err != nil {
		return err
	}
	if predicate == nil {
		return fmt.Errorf("predicate %s is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.predicates[name]; exists {
		return fmt.Errorf("predicate already registered: %s", name)
	}

	r.predicates[name] = predicate
	return nil
}

// Alias makes alias resolve to the predicate registered under
// target. The alias is an ordinary name from then on.
func (r *DefaultRegistry) Alias(alias, target string) error {
	if err := validateName(alias); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	predicate, ok := r.predicates[target]
	if !ok {
		return fmt.Errorf("alias %s: %w: %s", alias, ErrUnknownPredicate, target)
	}
	if _, exists := r.predicates[alias]; exists {
		return fmt.Errorf("predicate already registered: %s", alias)
	}

	r.predicates[alias] = predicate
	return nil
}

// Lookup returns the predicate registered under name.
func (r *DefaultRegistry) Lookup(
	name string,
) (narrow.Predicate[any], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.predicates[name]
	return p, ok
}

// Has reports whether name is registered.
func (r *DefaultRegistry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns all registered names sorted.
func (r *DefaultRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.predicates))
	for name := range r.predicates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func validateName(name string) error {
	if strings.TrimSpace(name) != name || name == "" {
		return fmt.Errorf("invalid predicate name %q", name)
	}
	if strings.Contains(name, unionSeparator) {
		return fmt.Errorf(
			"predicate name %q contains %q", name, unionSeparator,
		)
	}
	return nil
}
