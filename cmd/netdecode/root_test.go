package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartMetricsServerReturnsNilWhenAddrEmpty(t *testing.T) {
	require.Nil(t, startMetricsServer(""))
}

func TestNewRootCmdRegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := make(map[string]bool)
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	require.True(t, names["decode"])
	require.True(t, names["batch"])
	require.True(t, names["describe-schema"])
}
