package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origVersion := Version
	origCommit := Commit
	origBuildTime := BuildTime
	defer func() {
		Version = origVersion
		Commit = origCommit
		BuildTime = origBuildTime
	}()

	t.Run("default values", func(t *testing.T) {
		Version = "dev"
		Commit = "unknown"
		BuildTime = "unknown"

		result := String()
		if !strings.Contains(result, "dev") {
			t.Errorf("String() = %q, should contain 'dev'", result)
		}
		if !strings.Contains(result, "built") {
			t.Errorf("String() = %q, should contain 'built'", result)
		}
	})

	t.Run("custom values", func(t *testing.T) {
		Version = "1.2.3"
		Commit = "abc1234"
		BuildTime = "2024-06-01T00:00:00Z"

		result := String()
		want := "1.2.3 (abc1234) built 2024-06-01T00:00:00Z"
		if result != want {
			t.Errorf("String() = %q, want %q", result, want)
		}
	})
}
