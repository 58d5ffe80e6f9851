//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedBinaryPath holds the path to a shared tempograph binary built once for all tests.
	sharedBinaryPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getTempographBinary returns the path to the tempograph binary, building it once if needed.
func getTempographBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "tempograph-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binaryPath := filepath.Join(tempDir, "tempograph")
		buildCmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/tempograph")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build tempograph: %v", err))
		}

		sharedBinaryPath = binaryPath
	})

	return sharedBinaryPath
}

// makeVault writes a small vault with dated entries into dir and returns it.
func makeVault(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	notes := map[string]string{
		"2024-01-15.md": "---\nwords: 120\nstatus: running\ntags: [go, notes]\n---\nbody\n",
		"2024-01-16.md": "---\nwords: 80\nstatus: Running\ntags: [go]\n---\nbody\n",
		"2024-02-01.md": "---\nwords: 200\nstatus: done\ntags: [notes, review]\n---\nbody\n",
		"undated.md":    "---\nwords: 10\n---\nbody\n",
	}
	for name, content := range notes {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write note %s: %v", name, err)
		}
	}
	return dir
}

// runTempographCommand runs the shared binary and reports failures with output.
func runTempographCommand(t *testing.T, dir string, args ...string) error {
	t.Helper()
	binaryPath := getTempographBinary()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
