package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "placegen", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["generate"], "expected subcommand %q not found", "generate")
}

func TestGenerateCommand_Flags(t *testing.T) {
	flag := generateCmd.Flags().Lookup("seed")
	require.NotNil(t, flag, "generate command should have --seed flag")
	assert.Equal(t, "0", flag.DefValue)
}
