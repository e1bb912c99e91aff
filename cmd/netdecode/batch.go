package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/replicore/netdecode/internal/bitio"
	"github.com/replicore/netdecode/internal/config"
	"github.com/replicore/netdecode/internal/packet"
	"github.com/replicore/netdecode/internal/schema"
	"github.com/replicore/netdecode/internal/session"
)

func newBatchCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Decode every file in a directory against one shared parser session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := listFiles(args[0])
			if err != nil {
				return err
			}

			rec := startMetricsServer(config.GetGlobalConfig().Metrics.Addr)
			state := session.New(schema.Shared())
			debug := config.GetGlobalConfig().Decoder.DebugRoundtrip

			var sp *spinner.Spinner
			if !quiet {
				sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
				sp.Prefix = fmt.Sprintf("decoding %d files... ", len(files))
				sp.Start()
			}

			var decoded, dropped int
			for _, f := range files {
				raw, err := os.ReadFile(f)
				if err != nil {
					return err
				}
				if _, err := packet.Decode(bitio.NewCursor(raw), state, rec, debug); err != nil {
					dropped++
					continue
				}
				decoded++
			}

			if sp != nil {
				sp.Stop()
			}

			cmd.Println(color.GreenString("%d decoded", decoded) + ", " + color.RedString("%d dropped", dropped))
			return nil
		},
	}

	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the progress spinner")
	return cmd
}

func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
