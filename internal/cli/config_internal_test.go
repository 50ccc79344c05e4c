package cli

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/busroute/dataset"
)

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "BUSROUTE_MAX_PATHS", envKey("max-paths"))
	assert.Equal(t, "BUSROUTE_FROM", envKey("from"))
}

func TestEnvReader(t *testing.T) {
	t.Setenv("BUSROUTE_FROM", "17")
	t.Setenv("BUSROUTE_NO_WALK", "yes")
	t.Setenv("BUSROUTE_DATASET", "")

	var r envReader
	assert.Equal(t, 17, r.intVal("from", 0))
	assert.Equal(t, 5, r.intVal("to", 5))
	assert.Equal(t, "first", r.stringVal("dataset", "first"), "empty values fall back")
	assert.NoError(t, r.err)

	assert.False(t, r.boolVal("no-walk", false))
	require.ErrorIs(t, r.err, ErrBadConfig)
	assert.Contains(t, r.err.Error(), "BUSROUTE_NO_WALK")
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, useColor(ColorAlways, &buf))
	assert.False(t, useColor(ColorNever, &buf))
	assert.False(t, useColor(ColorAuto, &buf), "a buffer is not a terminal")

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, useColor(ColorAuto, f), "a regular file is not a terminal")

	t.Setenv("NO_COLOR", "1")
	assert.True(t, useColor(ColorAlways, &buf), "always beats NO_COLOR")
}

func TestQuery(t *testing.T) {
	d, err := dataset.Builtin("first")
	require.NoError(t, err)

	from, to, err := query(Config{}, d)
	require.NoError(t, err)
	assert.EqualValues(t, 1221, from)
	assert.EqualValues(t, 1225, to)

	from, to, err = query(Config{To: 1223}, d)
	require.NoError(t, err)
	assert.EqualValues(t, 1221, from)
	assert.EqualValues(t, 1223, to)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "INFO")
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "k=1")

	_, err = NewLogger(&buf, "chatty")
	assert.ErrorIs(t, err, ErrBadConfig)
}
