package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gobeaver/filemagic"
)

type typeInfo struct {
	Name      string `json:"name" yaml:"name"`
	Extension string `json:"extension" yaml:"extension"`
	MIME      string `json:"mime" yaml:"mime"`
	Category  string `json:"category" yaml:"category"`
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List recognized file types",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			var infos []typeInfo
			for _, t := range filemagic.FileTypes() {
				infos = append(infos, typeInfo{
					Name:      t.String(),
					Extension: t.Extension(),
					MIME:      t.MIME(),
					Category:  t.Category(),
				})
			}
			return a.printTypes(infos)
		},
	}
}

func (a *app) printTypes(infos []typeInfo) error {
	switch a.cfg.Format {
	case filemagic.FormatJSON:
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case filemagic.FormatYAML:
		return yaml.NewEncoder(a.stdout).Encode(infos)
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEXT\tMIME\tCATEGORY")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t.%s\t%s\t%s\n", info.Name, info.Extension, info.MIME, info.Category)
	}
	return tw.Flush()
}

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the built-in rule table in priority order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			d := filemagic.Default()
			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tTYPE\tSTART\tEND")
			for i, r := range d.Rules() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, r.Type, formatPattern(r.Start), formatPattern(r.End))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			_, err := fmt.Fprintf(a.stdout, "\nhead reach: %d bytes, tail reach: %d bytes\n", d.HeadReach(), d.TailReach())
			return err
		},
	}
}

// formatPattern renders a pattern as "@offset hex (ascii)".
func formatPattern(p filemagic.Pattern) string {
	if p.IsNull() {
		return "-"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "@%#x % x", p.Offset, p.Bytes)
	if printable(p.Bytes) {
		fmt.Fprintf(&sb, " %q", p.Bytes)
	}
	return sb.String()
}

// printable reports whether most of b is printable ASCII.
func printable(b []byte) bool {
	n := 0
	for _, c := range b {
		if c >= 0x20 && c < 0x7F {
			n++
		}
	}
	return n*2 > len(b)
}
