package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A bare invocation with no paths is a usage error: Execute must return an
// error (so main exits non-zero) and cobra prints the usage text.
func TestRootCommandNoArgs(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no file or directory paths")
	assert.Contains(t, out.String(), "Usage:")
}
