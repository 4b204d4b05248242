// Package attack runs the two attack phases against one archive: the
// learned dictionary first, then exhaustive enumeration by length.
package attack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"archivecrack/internal/archive"
	"archivecrack/internal/charset"
	"archivecrack/internal/config"
	"archivecrack/internal/dictionary"
	"archivecrack/internal/metrics"
	"archivecrack/internal/search"
)

type Phase string

const (
	PhaseDictionary Phase = "dictionary"
	PhaseBruteForce Phase = "bruteforce"
)

// Outcome summarizes a run. TotalTested counts scheduled work: the whole
// dictionary plus the full keyspace of every length that was started.
type Outcome struct {
	Found       bool
	Password    string
	Phase       Phase
	TotalTested uint64
	Elapsed     time.Duration
}

// Speed returns candidates per second.
func (o Outcome) Speed() float64 {
	if o.Elapsed <= 0 {
		return 0
	}
	return float64(o.TotalTested) / o.Elapsed.Seconds()
}

// Progress receives per-pass progress. Add is called concurrently.
type Progress interface {
	Start(label string, total uint64)
	Add(n uint64)
	Finish()
}

type nopProgress struct{}

func (nopProgress) Start(string, uint64) {}
func (nopProgress) Add(uint64)           {}
func (nopProgress) Finish()              {}

type Option func(*Cracker)

func WithLogger(l *slog.Logger) Option {
	return func(c *Cracker) { c.logger = l }
}

func WithMetrics(m *metrics.Recorder) Option {
	return func(c *Cracker) { c.metrics = m }
}

// WithProgress reports pass progress to p. A nil p disables reporting.
func WithProgress(p Progress) Option {
	return func(c *Cracker) {
		if p != nil {
			c.progress = p
		}
	}
}

// WithDefaultDictionary overrides the learned dictionary location. It is
// seeded on first use and receives every recovered password.
func WithDefaultDictionary(path string) Option {
	return func(c *Cracker) { c.defaultDict = path }
}

func WithAdapterFactory(f func(archive.Format) archive.Adapter) Option {
	return func(c *Cracker) { c.newAdapter = f }
}

// WithWorkers sets the pool size used when the config leaves it at zero.
func WithWorkers(n int) Option {
	return func(c *Cracker) { c.workers = n }
}

type Cracker struct {
	logger      *slog.Logger
	metrics     *metrics.Recorder
	progress    Progress
	defaultDict string
	newAdapter  func(archive.Format) archive.Adapter
	workers     int
}

func New(opts ...Option) *Cracker {
	c := &Cracker{
		logger:     slog.Default(),
		progress:   nopProgress{},
		newAdapter: archive.NewAdapter,
	}
	for _, o := range opts {
		o(c)
	}
	if c.defaultDict == "" {
		if p, err := dictionary.DefaultPath(); err == nil {
			c.defaultDict = p
		} else {
			c.logger.Warn("no default dictionary location", "err", err)
		}
	}
	return c
}

// plan is the validated brute-force schedule.
type plan struct {
	alphabet charset.Alphabet
	minLen   int
	maxLen   int
	sizes    []uint64
}

func newPlan(cfg config.Config) (plan, error) {
	lo, hi, err := cfg.LengthRange()
	if err != nil {
		return plan{}, err
	}
	sels, err := charset.ParseSelectors(cfg.Charsets)
	if err != nil {
		return plan{}, err
	}
	alpha, err := charset.Build(sels...)
	if err != nil {
		return plan{}, err
	}
	p := plan{alphabet: alpha, minLen: lo, maxLen: hi}
	for l := lo; l <= hi; l++ {
		n, err := charset.KeyspaceSize(alpha.Size(), l)
		if err != nil {
			return plan{}, fmt.Errorf("%s at length %d: %w", alpha.Label, l, err)
		}
		p.sizes = append(p.sizes, n)
	}
	return p, nil
}

// Run attacks cfg.ArchivePath. Exhausting every candidate is not an error:
// the returned Outcome has Found == false. Cancelling ctx stops the current
// pass and returns the partial Outcome with the context's error.
func (c *Cracker) Run(ctx context.Context, cfg config.Config) (Outcome, error) {
	start := time.Now()
	log := c.logger.With("run_id", uuid.NewString(), "archive", cfg.ArchivePath)

	var out Outcome
	finish := func(err error) (Outcome, error) {
		out.Elapsed = time.Since(start)
		switch {
		case out.Found:
			c.metrics.AttackDone("found")
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			c.metrics.AttackDone("cancelled")
		case err != nil:
			c.metrics.AttackDone("error")
		default:
			c.metrics.AttackDone("not_found")
		}
		return out, err
	}

	p, err := newPlan(cfg)
	if err != nil {
		return finish(err)
	}

	format, err := archive.DetectFormat(cfg.ArchivePath)
	if err != nil {
		return finish(err)
	}
	adapter := c.newAdapter(format)
	if adapter == nil {
		return finish(fmt.Errorf("%w: %s", ErrUnsupportedFormat, format))
	}

	learned := dictionary.Store{Path: c.defaultDict}
	if learned.Path != "" {
		if err := learned.EnsureExists(); err != nil {
			log.Warn("could not create default dictionary", "path", learned.Path, "err", err)
		}
	}

	target, err := adapter.DetectTarget(cfg.ArchivePath)
	if err != nil {
		return finish(fmt.Errorf("%w: %w", ErrNoRecognizableFile, err))
	}
	count, err := adapter.FileCount(cfg.ArchivePath)
	if err != nil {
		log.Warn("could not count entries", "err", err)
		count = 0
	}
	log.Info("target selected",
		"format", adapter.FormatName(),
		"entries", count,
		"target", target.Name,
		"type", target.Extension,
		"size", target.Size)

	test := func(pw string) bool {
		return adapter.TryPassword(cfg.ArchivePath, pw, target)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = c.workers
	}

	found := func(phase Phase, pw string) (Outcome, error) {
		out.Found, out.Password, out.Phase = true, pw, phase
		c.learn(log, learned, pw)
		return finish(nil)
	}

	// dictionary phase
	dict := dictionary.Store{Path: cfg.Dictionary}
	if dict.Path == "" {
		dict = learned
	}
	switch {
	case cfg.SkipDictionary:
		log.Info("dictionary phase skipped")
	case dict.Path == "" || !dict.Exists():
		log.Info("dictionary not found, skipping", "path", dict.Path)
	default:
		words, err := dict.LoadUnique()
		if err != nil {
			return finish(fmt.Errorf("load dictionary: %w", err))
		}
		out.Phase = PhaseDictionary
		out.TotalTested += uint64(len(words))
		log.Info("dictionary phase", "path", dict.Path, "words", len(words))

		phaseStart := time.Now()
		res, err := c.pass(PhaseDictionary, "dictionary", uint64(len(words)), workers,
			func(o search.Options) (search.Result, error) { return search.Words(ctx, words, test, o) })
		c.metrics.PhaseDone(string(PhaseDictionary), time.Since(phaseStart))
		if err != nil {
			return finish(fmt.Errorf("dictionary phase interrupted: %w", err))
		}
		if res.Found {
			return found(PhaseDictionary, res.Candidate)
		}
	}

	// brute-force phase
	out.Phase = PhaseBruteForce
	log.Info("brute-force phase",
		"charset", p.alphabet.Label,
		"alphabet_size", p.alphabet.Size(),
		"min_length", p.minLen,
		"max_length", p.maxLen)

	phaseStart := time.Now()
	defer func() { c.metrics.PhaseDone(string(PhaseBruteForce), time.Since(phaseStart)) }()
	for i, size := range p.sizes {
		length := p.minLen + i
		out.TotalTested += size
		log.Debug("scanning length", "length", length, "keyspace", size)

		candidate := func(n uint64) string { return p.alphabet.Password(n, length) }
		res, err := c.pass(PhaseBruteForce, fmt.Sprintf("length %d", length), size, workers,
			func(o search.Options) (search.Result, error) { return search.Run(ctx, size, candidate, test, o) })
		if err != nil {
			return finish(fmt.Errorf("brute-force phase interrupted at length %d: %w", length, err))
		}
		if res.Found {
			log.Info("password found", "length", length, "ordinal", res.Index, "keyspace", size)
			return found(PhaseBruteForce, res.Candidate)
		}
	}

	log.Info("password not found", "tested", out.TotalTested)
	return finish(nil)
}

// pass runs one search with progress reporting and counts what it tested.
func (c *Cracker) pass(phase Phase, label string, size uint64, workers int,
	run func(search.Options) (search.Result, error)) (search.Result, error) {
	c.progress.Start(label, size)
	defer c.progress.Finish()

	res, err := run(search.Options{
		Workers:    workers,
		OnProgress: c.progress.Add,
	})
	c.metrics.Tested(string(phase), res.Tested)
	return res, err
}

func (c *Cracker) learn(log *slog.Logger, store dictionary.Store, pw string) {
	if store.Path == "" {
		return
	}
	added, err := store.Append(pw)
	switch {
	case err != nil:
		log.Warn("could not save password to dictionary", "path", store.Path, "err", err)
	case added:
		log.Info("password saved to dictionary", "path", store.Path)
	}
}
