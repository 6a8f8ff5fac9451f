//go:build e2e && unix

package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	catalog, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartApp("--catalog", catalog), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")
	require.True(t, tf.SeePlain("gamegrid"), "Should show gamegrid title")

	t.Logf("Sending 'q' to quit application...")
	require.NoError(t, tf.Quit())

	exited, exitErr := tf.WaitExit(1500 * time.Millisecond)
	if exited {
		require.NoError(t, exitErr, "Process should exit cleanly with 'q'")
		return
	}

	// If 'q' didn't work, use Ctrl+C
	t.Logf("'q' didn't work within 1.5 seconds, using Ctrl+C")
	require.NoError(t, tf.SendCtrlC())
	exited, _ = tf.WaitExit(750 * time.Millisecond)
	if !exited {
		tf.DumpTailOnFail(t, "exit-failure", 4096)
	}
	t.Error("Application did not exit on 'q'")
}

func TestApplicationExitWithCtrlC(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	catalog, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartApp("--catalog", catalog), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the first frame")

	// Ctrl+C quits even while typing a search
	require.NoError(t, tf.SendKeys(KeySearch))
	require.True(t, tf.SeePlain("Search:"), "Search prompt should appear")
	require.NoError(t, tf.SendCtrlC())

	exited, exitErr := tf.WaitExit(2 * time.Second)
	if !exited {
		tf.DumpTailOnFail(t, "ctrlc-exit-failure", 4096)
	}
	require.True(t, exited, "app did not exit after Ctrl+C")
	require.NoError(t, exitErr)
}

func TestBadCatalogExitsWithError(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartApp("--catalog", tf.workspace+"/missing.toml"))

	exited, exitErr := tf.WaitExit(2 * time.Second)
	require.True(t, exited, "app should exit when the catalog cannot be loaded")
	require.Error(t, exitErr)
	require.True(t, tf.SeePlain("load catalog"), "Should explain the failure")
}
