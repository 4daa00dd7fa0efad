package registry

import (
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.assafely/pkg/narrow"
)

func TestNew_RegistersAllBuiltins(t *testing.T) {
	r := New()

	assert.Equal(t, []string{
		"array", "bigint", "boolean", "date", "null",
		"number", "string", "string[]", "symbol", "undefined",
	}, r.Names())
}

func TestBuiltins_Behave(t *testing.T) {
	var nilPtr *int

	tests := []struct {
		name  string
		value any
	}{
		{"string", "s"},
		{"boolean", false},
		{"number", 1.5},
		{"symbol", narrow.NewSymbol("s")},
		{"bigint", big.NewInt(2)},
		{"undefined", nil},
		{"null", nilPtr},
		{"date", time.Unix(0, 1)},
		{"array", []any{1, "a"}},
		{"string[]", []string{"a"}},
	}

	r := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := r.Lookup(tt.name)
			require.True(t, ok)
			assert.True(t, p(tt.value))
			assert.False(t, p(struct{}{}))
		})
	}
}

func TestDefaultRegistry_Register_Success(t *testing.T) {
	r := New()

	err := r.Register("positive", func(v any) bool {
		n, ok := v.(int)
		return ok && n > 0
	})
	require.NoError(t, err)
	assert.True(t, r.Has("positive"))

	p, ok := r.Lookup("positive")
	require.True(t, ok)
	assert.True(t, p(1))
	assert.False(t, p(-1))
}

func TestDefaultRegistry_Register_Errors(t *testing.T) {
	always := narrow.Predicate[any](func(any) bool { return true })

	tests := []struct {
		name      string
		predName  string
		predicate narrow.Predicate[any]
		contains  string
	}{
		{"duplicate", "string", always, "already registered"},
		{"empty name", "", always, "invalid predicate name"},
		{"padded name", " x ", always, "invalid predicate name"},
		{"separator", "a|b", always, "contains"},
		{"nil predicate", "x", nil, "is nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Register(tt.predName, tt.predicate)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestDefaultRegistry_Alias(t *testing.T) {
	r := New()

	require.NoError(t, r.Alias("str", "string"))
	p, ok := r.Lookup("str")
	require.True(t, ok)
	assert.True(t, p("x"))

	err := r.Alias("str", "number")
	assert.ErrorContains(t, err, "already registered")

	err = r.Alias("x", "missing")
	assert.ErrorIs(t, err, ErrUnknownPredicate)

	err = r.Alias("a|b", "string")
	assert.Error(t, err)
}

func TestDefaultRegistry_Lookup_Unknown(t *testing.T) {
	_, ok := New().Lookup("nonexistent")
	assert.False(t, ok)
}

func TestDefaultRegistry_ConcurrentAccess(t *testing.T) {
	r := New()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.Register(string(rune('a'+i)), narrow.IsUndefined)
		}()
		go func() {
			defer wg.Done()
			_, _ = r.Lookup("string")
			_ = r.Names()
		}()
	}
	wg.Wait()

	assert.Len(t, r.Names(), 30)
}

func TestDefault(t *testing.T) {
	assert.True(t, Default.Has("string"))
}
