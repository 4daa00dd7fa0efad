package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoader_Load(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := `# Comment
FOO=bar
BAZ="quoted value"
EMPTY=
SINGLE_QUOTE='single'
export EXPORTED=yes
NOT_A_PAIR
`
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	l := NewLoader()
	require.NoError(t, l.Load(envFile))
	assert.Equal(t, map[string]string{
		"FOO":          "bar",
		"BAZ":          "quoted value",
		"EMPTY":        "",
		"SINGLE_QUOTE": "single",
		"EXPORTED":     "yes",
	}, l.All())
}

func TestDefaultLoader_Load_FileNotFound(t *testing.T) {
	l := NewLoader()
	err := l.Load("/nonexistent/.env")
	assert.Error(t, err)
}

func TestDefaultLoader_Get(t *testing.T) {
	l := NewLoader()
	l.vars["ASSAFELY_TEST_KEY"] = "from_file"

	// File value
	assert.Equal(t, "from_file", l.Get("ASSAFELY_TEST_KEY"))

	// OS env takes precedence
	t.Setenv("ASSAFELY_TEST_KEY", "from_os")
	assert.Equal(t, "from_os", l.Get("ASSAFELY_TEST_KEY"))
}

func TestDefaultLoader_GetWithDefault(t *testing.T) {
	l := NewLoader()
	assert.Equal(t, "dflt", l.GetWithDefault("ASSAFELY_MISSING", "dflt"))

	l.vars["ASSAFELY_PRESENT"] = "v"
	assert.Equal(t, "v", l.GetWithDefault("ASSAFELY_PRESENT", "dflt"))
}

func TestDefaultLoader_GetBool(t *testing.T) {
	l := NewLoader()

	b, err := l.GetBool("ASSAFELY_FLAG", true)
	require.NoError(t, err)
	assert.True(t, b)

	l.vars["ASSAFELY_FLAG"] = "false"
	b, err = l.GetBool("ASSAFELY_FLAG", true)
	require.NoError(t, err)
	assert.False(t, b)

	l.vars["ASSAFELY_FLAG"] = "maybe"
	_, err = l.GetBool("ASSAFELY_FLAG", true)
	assert.Error(t, err)
}
