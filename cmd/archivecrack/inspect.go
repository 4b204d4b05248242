package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"archivecrack/internal/archive"
	"archivecrack/internal/attack"
)

func newInspectCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <archive>",
		Short: "Show the archive format and the entry passwords are tested against",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspect(stdout, args[0])
		},
	}
}

func inspect(w io.Writer, path string) error {
	format, err := archive.DetectFormat(path)
	if err != nil {
		return err
	}
	adapter := archive.NewAdapter(format)

	count, err := adapter.FileCount(path)
	if err != nil {
		fmt.Fprintf(w, "File:    %s (%s, entries unknown: %v)\n", path, adapter.FormatName(), err)
	} else {
		fmt.Fprintf(w, "File:    %s (%s, %d entries)\n", path, adapter.FormatName(), count)
	}

	target, err := adapter.DetectTarget(path)
	if err != nil {
		return fmt.Errorf("%w: %w", attack.ErrNoRecognizableFile, err)
	}
	fmt.Fprintf(w, "Target:  %s (#%d, %s, %d bytes)\n", target.Name, target.Index, target.Extension, target.Size)
	return nil
}
