package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sam/internal/application/replay"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		flagReplayLevel = ""
		flagConfigsDir = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeReplay(t *testing.T, data replay.ReplayData) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestLevelsCommand(t *testing.T) {
	out, err := execute(t, "levels")

	require.NoError(t, err)
	assert.Equal(t, "  level1\n  training\n", out)
}

func TestLevelsCommand_ConfigsDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "levels"), 0o755))

	out, err := execute(t, "levels", "--configs", dir)

	require.NoError(t, err)
	assert.Equal(t, "No levels available.\n", out)
}

func TestReplayCommand(t *testing.T) {
	data := replay.CreateTestReplayData(5, 0.25)
	data.Level = "training"
	for i := range data.Frames {
		data.Frames[i].R = true
	}

	out, err := execute(t, "replay", writeReplay(t, data))

	require.NoError(t, err)
	assert.Equal(t, "level=training frames=5 score=10 ammo=5 lives=3 state=Standing\n", out)
}

func TestReplayCommand_LevelOverride(t *testing.T) {
	data := replay.CreateTestReplayData(1, 0.25)

	out, err := execute(t, "replay", "--level", "level1", writeReplay(t, data))

	require.NoError(t, err)
	assert.Contains(t, out, "level=level1 frames=1")
}

func TestReplayCommand_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := execute(t, "replay", filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("unknown level", func(t *testing.T) {
		data := replay.CreateTestReplayData(1, 0.25)
		data.Level = "nowhere"
		_, err := execute(t, "replay", writeReplay(t, data))
		assert.ErrorContains(t, err, "failed to read level nowhere")
	})

	t.Run("frame delta out of range", func(t *testing.T) {
		data := replay.CreateTestReplayData(3, 0.25)
		data.Frames[2].DT = 2
		_, err := execute(t, "replay", writeReplay(t, data))
		assert.ErrorContains(t, err, "frame 2")
	})
}
