// SPDX-License-Identifier: MIT

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "lvcone", cmd.Use)
	assert.Contains(t, cmd.Long, "Hilbert bases")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"compute", "hull", "hnf"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	for _, name := range []string{"time-limit", "workers", "variability", "best-effort"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestComputeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	computeCmd, _, err := cmd.Find([]string{"compute"})
	require.NoError(t, err)

	propFlag := computeCmd.Flags().Lookup("property")
	require.NotNil(t, propFlag)
	assert.Equal(t, "p", propFlag.Shorthand)
	assert.Equal(t, "[extreme_rays,support_hyperplanes,equations]", propFlag.DefValue)
}

func TestFlagDefaultsFromEnv(t *testing.T) {
	t.Setenv("LVCONE_WORKERS", "3")
	t.Setenv("LVCONE_TIME_LIMIT", "1m30s")

	cmd := NewRootCommand()
	assert.Equal(t, "3", cmd.PersistentFlags().Lookup("workers").DefValue)
	assert.Equal(t, "1m30s", cmd.PersistentFlags().Lookup("time-limit").DefValue)
}

func TestInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--format", "xml", "hnf", "testdata/hnf.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
