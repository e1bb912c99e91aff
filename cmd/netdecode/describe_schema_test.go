package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescribeSchemaListsAllClasses(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"describe-schema"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "FirstServerObject")
}

func TestDescribeSchemaFiltersByClass(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"describe-schema", "--class", "FirstServerObject"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "mysteryproperty3")
}

func TestDescribeSchemaUnknownClassErrors(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"describe-schema", "--class", "NoSuchClass"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	require.Error(t, cmd.Execute())
}
