// Command archivecrack recovers the password of an encrypted ZIP, 7z or RAR
// archive from a learned dictionary and by exhaustive enumeration.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitFound    = 0
	exitNotFound = 1
	exitFatal    = 2
)

var errNotFound = errors.New("password not found")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitFound
	case errors.Is(err, errNotFound):
		return exitNotFound
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitFatal
}
