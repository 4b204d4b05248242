package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"archivecrack/internal/charset"
)

const samplePreview = 12

func newCharsetsCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "charsets",
		Short: "List the character sets accepted by --charset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCharsets(stdout)
		},
	}
}

func printCharsets(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLABEL\tSIZE\tSAMPLE")
	for _, s := range charset.Selectors() {
		chars := s.Chars()
		sample := chars
		if len(sample) > samplePreview {
			sample = sample[:samplePreview]
		}
		preview := string(sample)
		if len(chars) > samplePreview {
			preview += "…"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%q\n", s, s.Label(), len(chars), preview)
	}
	return tw.Flush()
}
