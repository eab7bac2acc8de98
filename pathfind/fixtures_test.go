package pathfind_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/pathfind"
)

// fixture is one regression grid from testdata/cases.yaml.
type fixture struct {
	Name   string   `yaml:"name"`
	Grid   []string `yaml:"grid"`
	Path   []string `yaml:"path"`
	NoPath bool     `yaml:"nopath"`
}

func loadFixtures(t *testing.T) []fixture {
	t.Helper()
	raw, err := os.ReadFile("testdata/cases.yaml")
	require.NoError(t, err)

	var cases []fixture
	require.NoError(t, yaml.Unmarshal(raw, &cases))
	require.NotEmpty(t, cases)
	return cases
}

// TestShortestPath_Fixtures replays every grid in testdata/cases.yaml.
func TestShortestPath_Fixtures(t *testing.T) {
	for _, tc := range loadFixtures(t) {
		t.Run(tc.Name, func(t *testing.T) {
			path, err := pathfind.ShortestPath(tc.Grid)
			if tc.NoPath {
				require.ErrorIs(t, err, pathfind.ErrNoPath)
				require.Nil(t, path)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.Path, path.Strings())
		})
	}
}
