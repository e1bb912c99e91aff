package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/replicore/netdecode/internal/bitio"
)

func buildEmptyPacket(t *testing.T) []byte {
	t.Helper()
	w := bitio.NewWriter()
	w.Put(0, 14) // seqnr
	w.Put(1, 1)  // terminator
	pad := (8 - w.Len()%8) % 8
	w.Put(0, pad)
	return w.Bytes()
}

func TestDecodeCommandDecodesRawFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "packet.bin")
	require.NoError(t, os.WriteFile(path, buildEmptyPacket(t), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"decode", path})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "seqnr=0")
}

func TestDecodeCommandDecodesHexFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "packet.hex")
	require.NoError(t, os.WriteFile(path, []byte(hex.EncodeToString(buildEmptyPacket(t))), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"decode", "--hex", path})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "seqnr=0")
}

func TestDecodeCommandMissingFileErrors(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"decode", "/no/such/file"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	require.Error(t, cmd.Execute())
}

func TestReadPacketFileRejectsInvalidHex(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.hex")
	require.NoError(t, os.WriteFile(path, []byte("not-hex"), 0o644))

	_, err := readPacketFile(path, true)
	require.Error(t, err)
}
