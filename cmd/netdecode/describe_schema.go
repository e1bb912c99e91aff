package main

import (
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/replicore/netdecode/internal/schema"
)

func newDescribeSchemaCmd() *cobra.Command {
	var className string

	cmd := &cobra.Command{
		Use:   "describe-schema",
		Short: "List every class in the static registry and its property table",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := schema.Shared()

			if className != "" {
				return describeOneClass(cmd, registry, className)
			}
			return describeAllClasses(cmd, registry)
		},
	}

	cmd.Flags().StringVar(&className, "class", "", "show the property table for just this class")
	return cmd
}

func describeAllClasses(cmd *cobra.Command, registry *schema.Registry) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Class", "ID Size (bits)", "Properties"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, c := range registry.Classes() {
		table.Append([]string{c.Name, fmt.Sprintf("%d", c.IDSize), fmt.Sprintf("%d", len(c.Properties))})
	}
	table.Render()
	return nil
}

func describeOneClass(cmd *cobra.Command, registry *schema.Registry, name string) error {
	for _, c := range registry.Classes() {
		if c.Name != name {
			continue
		}

		type row struct {
			key  uint32
			name string
			kind string
		}
		rows := make([]row, 0, len(c.Properties))
		for key, prop := range c.Properties {
			rows = append(rows, row{key: key, name: prop.Name, kind: prop.Kind.String()})
		}
		sort.Slice(rows, func(i, j int) bool { return rows[i].key < rows[j].key })

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Key", "Property", "Kind"})
		table.SetAutoWrapText(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, r := range rows {
			table.Append([]string{fmt.Sprintf("%d", r.key), r.name, r.kind})
		}
		table.Render()
		return nil
	}
	return fmt.Errorf("unknown class %q", name)
}
