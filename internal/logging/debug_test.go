package logging

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugEnabled(t *testing.T) {
	t.Run("disabled when WT_DEBUG unset", func(t *testing.T) {
		t.Setenv("WT_DEBUG", "")
		assert.False(t, DebugEnabled())
	})

	t.Run("enabled when WT_DEBUG set", func(t *testing.T) {
		t.Setenv("WT_DEBUG", "1")
		assert.True(t, DebugEnabled())
	})

	t.Run("enabled for any non-empty value", func(t *testing.T) {
		t.Setenv("WT_DEBUG", "true")
		assert.True(t, DebugEnabled())
	})
}

func TestDebugf_NoPanicWhenDisabled(t *testing.T) {
	t.Setenv("WT_DEBUG", "")
	Debugf("value: %d\n", 42)
	Debugln("line")
}

func TestErrorf_TerminatesLines(t *testing.T) {
	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = old }()

	Errorf("dispatch failed for %s: %v", "task-1", "sink down")
	Errorf("dispatch failed for %s: %v", "task-2", "sink down")

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.Equal(t,
		"dispatch failed for task-1: sink down\ndispatch failed for task-2: sink down\n",
		string(out))
}
