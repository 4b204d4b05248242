package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"archivecrack/internal/attack"
	"archivecrack/internal/config"
	"archivecrack/internal/metrics"
)

type rootOptions struct {
	configPath     string
	dictionary     string
	charsets       []string
	length         int
	maxLength      int
	minLength      int
	skipDictionary bool
	workers        int
	metricsAddr    string
	quiet          bool
	logLevel       string
	logFormat      string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "archivecrack [flags] <archive>",
		Short: "Recover the password of an encrypted ZIP, 7z or RAR archive",
		Long: `archivecrack tries the learned dictionary first and then enumerates every
password over the selected character sets, shortest first. A password is
accepted when the smallest encrypted entry with a recognizable type decrypts
to content of that type. Recovered passwords are added to the dictionary at
~/.archive_cracker/dictionary.txt.

Exit status is 0 when the password is found, 1 when it is not, 2 on error.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrack(cmd, opts, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&opts.dictionary, "dictionary", "D", "", "dictionary file (default: the learned dictionary)")
	f.StringSliceVarP(&opts.charsets, "charset", "c", def.Charsets, "character sets for brute force (see 'charsets')")
	f.IntVarP(&opts.length, "length", "l", 0, "exact password length")
	f.IntVarP(&opts.maxLength, "max-length", "m", 0, fmt.Sprintf("maximum password length (default %d)", config.DefaultMaxLength))
	f.IntVar(&opts.minLength, "min-length", def.MinLength, "minimum password length, used with --max-length")
	f.BoolVar(&opts.skipDictionary, "skip-dictionary", false, "skip the dictionary phase")
	f.IntVarP(&opts.workers, "workers", "w", 0, "parallel workers (default: number of CPUs)")

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file; explicit flags override it")
	pf.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "no progress output")
	pf.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	pf.StringVar(&opts.logFormat, "log-format", "text", "text or json")

	cmd.AddCommand(newInspectCmd(stdout), newCharsetsCmd(stdout))
	return cmd
}

// resolveConfig layers defaults, the config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *rootOptions, args []string) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	if len(args) > 0 {
		cfg.ArchivePath = args[0]
	}
	if f.Changed("dictionary") {
		cfg.Dictionary = opts.dictionary
	}
	if f.Changed("charset") {
		cfg.Charsets = opts.charsets
	}
	if f.Changed("length") {
		cfg.Length = &opts.length
	}
	if f.Changed("max-length") {
		cfg.MaxLength = &opts.maxLength
	}
	if f.Changed("min-length") {
		cfg.MinLength = opts.minLength
	}
	if f.Changed("skip-dictionary") {
		cfg.SkipDictionary = opts.skipDictionary
	}
	if f.Changed("workers") {
		cfg.Workers = opts.workers
	}

	if cfg.ArchivePath == "" {
		return cfg, errors.New("no archive given")
	}
	return cfg, nil
}

func runCrack(cmd *cobra.Command, opts *rootOptions, args []string, stdout, stderr io.Writer) error {
	log, err := newLogger(stderr, opts.logLevel, opts.logFormat)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd, opts, args)
	if err != nil {
		return err
	}

	rec := metrics.New()
	if opts.metricsAddr != "" {
		stop, err := serveMetrics(opts.metricsAddr, rec, log)
		if err != nil {
			return err
		}
		defer stop()
	}

	cracker := attack.New(
		attack.WithLogger(log),
		attack.WithMetrics(rec),
		attack.WithProgress(newProgress(stderr, log, opts.quiet)),
	)
	out, err := cracker.Run(cmd.Context(), cfg)
	if err != nil {
		if out.TotalTested > 0 {
			fmt.Fprintf(stdout, "Stopped. Checked: %d | Time: %s\n", out.TotalTested, out.Elapsed.Round(time.Millisecond))
		}
		return err
	}

	if !out.Found {
		paint(stdout, color.FgRed).Fprint(stdout, "Password not found.")
		fmt.Fprintf(stdout, " Checked: %d | Time: %s\n",
			out.TotalTested, out.Elapsed.Round(time.Millisecond))
		return errNotFound
	}
	paint(stdout, color.FgGreen, color.Bold).Fprintf(stdout, "*** PASSWORD FOUND: %s ***", out.Password)
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "Phase: %s | Length: %d | Checked: %d | Time: %s | Speed: %.0f/s\n",
		out.Phase, len([]rune(out.Password)), out.TotalTested,
		out.Elapsed.Round(time.Millisecond), out.Speed())
	return nil
}

// paint returns a color that is only applied when w is a terminal.
func paint(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if isTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func serveMetrics(addr string, rec *metrics.Recorder, log *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", "err", err)
		}
	}()
	log.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
