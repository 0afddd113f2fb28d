package testsupport

import (
	"os"
	"testing"

	"dictpivot/internal/config"
)

// IsolateEnv points HOME and the working directory at fresh temp dirs and
// clears dictpivot environment overrides for the duration of the test. It
// returns the temp HOME.
func IsolateEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	for _, key := range []string{config.EnvLanguages, config.EnvSort, config.EnvLocale, config.EnvLogLevel} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
	return home
}
