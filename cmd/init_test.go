package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	tt "github.com/pseudolang/plin/internal/types"
	"github.com/pseudolang/plin/lint"
)

func TestInitConfigurationFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".plin.yaml")
	require.NoError(t, initConfigurationFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var config lint.Config
	require.NoError(t, yaml.Unmarshal(data, &config))
	assert.Equal(t, "plin", config.Name)
	require.Len(t, config.Rules, 4)
	for name, rule := range config.Rules {
		assert.Equal(t, tt.SeverityError, rule.Severity, "rule %s", name)
	}
}

// The written file must round-trip through an engine build.
func TestInitConfigurationFileIsLoadable(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".plin.yaml")
	require.NoError(t, initConfigurationFile(path))

	_, err := lint.New(path)
	assert.NoError(t, err)
}
