package phonology

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func getTestDataPath(name string) string {
	paths := []string{
		filepath.Join("../../data", name),
		filepath.Join("data", name),
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	wd, _ := os.Getwd()
	return filepath.Join(wd, "../../data", name)
}

func writeTestFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "write %s", name)
	return path
}
