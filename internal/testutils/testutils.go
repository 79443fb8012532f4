package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/nfrund/bloomly/internal/config"
)

// TestSessionSecret signs cookies in tests.
const TestSessionSecret = "a-very-secret-key-for-testing"

// ConfigForTests builds a config for tests. Values from .env.test at the
// project root are applied when that file exists; overrides win over both
// the file and the defaults.
func ConfigForTests(t *testing.T, overrides map[string]string) *config.Config {
	t.Helper()

	if root, ok := projectRoot(); ok {
		if env, err := godotenv.Read(filepath.Join(root, ".env.test")); err == nil {
			for key, value := range env {
				t.Setenv(key, value)
			}
		}
	}

	t.Setenv("SESSION_SECRET", TestSessionSecret)
	for key, value := range overrides {
		t.Setenv(key, value)
	}

	return config.FromEnv()
}

// projectRoot walks up from the working directory to the directory holding
// go.mod.
func projectRoot() (string, bool) {
	path, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, true
		}
		if path == filepath.Dir(path) {
			return "", false
		}
		path = filepath.Dir(path)
	}
}
