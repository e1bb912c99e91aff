package main

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/replicore/netdecode/internal/bitio"
	"github.com/replicore/netdecode/internal/config"
	"github.com/replicore/netdecode/internal/decodetree"
	"github.com/replicore/netdecode/internal/logging"
	"github.com/replicore/netdecode/internal/packet"
	"github.com/replicore/netdecode/internal/roundtrip"
	"github.com/replicore/netdecode/internal/schema"
	"github.com/replicore/netdecode/internal/session"
)

func newDecodeCmd() *cobra.Command {
	var asHex bool
	var debugRoundtrip bool

	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a single captured packet and print its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readPacketFile(args[0], asHex)
			if err != nil {
				return err
			}

			rec := startMetricsServer(config.GetGlobalConfig().Metrics.Addr)
			state := session.New(schema.Shared())
			debug := debugRoundtrip || config.GetGlobalConfig().Decoder.DebugRoundtrip

			p, err := packet.Decode(bitio.NewCursor(raw), state, rec, debug)
			if p != nil {
				cmd.Println(decodeHeading(err))
				cmd.Print(decodetree.Render(p))
			}
			if err != nil {
				return err
			}

			if debug {
				if err := roundtrip.Check(p, raw); err != nil {
					return err
				}
				logging.Debug("round-trip verified: %d bytes", len(raw))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asHex, "hex", false, "treat the input file's contents as a hex string instead of raw bytes")
	cmd.Flags().BoolVar(&debugRoundtrip, "debug-roundtrip", false, "assert encode(decode(x)) == x after decoding (spec.md §9 debug mode)")
	return cmd
}

func decodeHeading(err error) string {
	if err != nil {
		return color.RedString("decoded with error: %v", err)
	}
	return color.GreenString("decoded OK")
}

func readPacketFile(path string, asHex bool) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !asHex {
		return data, nil
	}
	return hex.DecodeString(strings.TrimSpace(string(data)))
}
