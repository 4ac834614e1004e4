package flags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestUniqueFlags asserts that all flag names are unique, to avoid accidental conflicts between the many flags.
func TestUniqueFlags(t *testing.T) {
	seenCLI := make(map[string]struct{})
	for _, flag := range Flags {
		name := flag.Names()[0]
		if _, ok := seenCLI[name]; ok {
			t.Errorf("duplicate flag %s", name)
			continue
		}
		seenCLI[name] = struct{}{}
	}
}

func TestHasEnvVar(t *testing.T) {
	for _, flag := range Flags {
		flagName := flag.Names()[0]

		t.Run(flagName, func(t *testing.T) {
			envFlag, ok := flag.(interface {
				GetEnvVars() []string
			})
			require.True(t, ok, "must support env vars")
			envVars := envFlag.GetEnvVars()
			require.Len(t, envVars, 1, "must have exactly one env var")
			require.True(t, strings.HasPrefix(envVars[0], EnvVarPrefix+"_"),
				"env var must carry the %s prefix", EnvVarPrefix)
		})
	}
}

func TestEnvVarFormat(t *testing.T) {
	for _, flag := range Flags {
		flagName := flag.Names()[0]

		t.Run(flagName, func(t *testing.T) {
			envFlag := flag.(interface {
				GetEnvVars() []string
			})
			want := EnvVarPrefix + "_" + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
			require.Equal(t, want, envFlag.GetEnvVars()[0])
		})
	}
}
