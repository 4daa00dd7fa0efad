// Package env reads configuration overrides from the process
// environment and from .env files.
package env

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Loader defines the interface for environment variable management.
type Loader interface {
	// Load reads environment variables from a .env file.
	Load(filepath string) error
	// Get retrieves an environment variable value.
	Get(key string) string
	// GetWithDefault retrieves an environment variable with a default fallback.
	GetWithDefault(key, defaultValue string) string
	// GetBool parses an environment variable as a bool.
	GetBool(key string, defaultValue bool) (bool, error)
	// All returns all variables loaded from files.
	All() map[string]string
}

// DefaultLoader implements Loader with .env file support. The OS
// environment takes precedence over loaded files.
type DefaultLoader struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewLoader creates an empty DefaultLoader.
func NewLoader() *DefaultLoader {
	return &DefaultLoader{
		vars: make(map[string]string),
	}
}

func (l *DefaultLoader) Load(filepath string) error {
	file, err := os.Open(filepath)
	if err != nil {
		return fmt.Errorf("open env file %s: %w", filepath, err)
	}
	defer file.Close()

	l.mu.Lock()
	defer l.mu.Unlock()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		// Remove surrounding quotes
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		l.vars[strings.TrimSpace(key)] = value
	}
	return scanner.Err()
}

func (l *DefaultLoader) Get(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.vars[key]
}

func (l *DefaultLoader) GetWithDefault(key, defaultValue string) string {
	if v := l.Get(key); v != "" {
		return v
	}
	return defaultValue
}

func (l *DefaultLoader) GetBool(key string, defaultValue bool) (bool, error) {
	v := l.Get(key)
	if v == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}

func (l *DefaultLoader) All() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	result := make(map[string]string, len(l.vars))
	for k, v := range l.vars {
		result[k] = v
	}
	return result
}
