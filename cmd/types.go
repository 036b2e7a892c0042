package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"kantan-bindgen/pkg/typemap"
	"kantan-bindgen/pkg/utils"
	"kantan-bindgen/pkg/whitelist"

	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Print the foreign to Kantan type mapping table",
	Long: `Print the built-in mapping from foreign type spellings to Kantan raw and
safe types, with the converters applied between them. A dash means the value
passes through unchanged. Spellings must match exactly to be mapped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := typemap.Default()

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "FOREIGN\tRAW\tSAFE\tRAW->SAFE\tSAFE->RAW")
		for _, e := range table.Entries() {
			foreign := e.Foreign
			if foreign == "" {
				foreign = "(none)"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", foreign, e.Raw, e.Safe, orDash(e.RawToSafe), orDash(e.SafeToRaw))
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d mapped types\n", table.Len())
		return nil
	},
}

var whitelistCmd = &cobra.Command{
	Use:   "whitelist",
	Short: "Print the declarations eligible for bindings",
	Long: `Print every foreign declaration name that bindings are generated for,
next to the Kantan name of its safe wrapper.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wl := whitelist.Default()

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "FOREIGN\tKANTAN")
		for _, name := range wl.Names() {
			fmt.Fprintf(tw, "%s\t%s\n", name, utils.TransformName(name))
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		fmt.Printf("\n%d declarations\n", wl.Len())
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
