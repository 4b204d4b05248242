package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"archivecrack/internal/attack"
)

// newProgress picks a bar for terminals and a periodic log line otherwise.
func newProgress(w io.Writer, log *slog.Logger, quiet bool) attack.Progress {
	if quiet {
		return nil
	}
	if isTerminal(w) {
		return &barProgress{w: w}
	}
	return &tickerProgress{log: log, interval: time.Second}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

type barProgress struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (p *barProgress) Start(label string, total uint64) {
	limit := int64(math.MaxInt64)
	if total < math.MaxInt64 {
		limit = int64(total)
	}
	p.bar = progressbar.NewOptions64(limit,
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionSetDescription(label),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("pw"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer: "█", SaucerHead: "█", SaucerPadding: "░",
			BarStart: "[", BarEnd: "]",
		}),
	)
}

func (p *barProgress) Add(n uint64) { _ = p.bar.Add64(int64(n)) }

func (p *barProgress) Finish() {
	_ = p.bar.Finish()
	fmt.Fprintln(p.w)
}

// tickerProgress logs the checked count and speed once per interval.
type tickerProgress struct {
	log      *slog.Logger
	interval time.Duration

	label   string
	total   uint64
	start   time.Time
	checked atomic.Uint64
	stop    chan struct{}
	done    chan struct{}
}

func (p *tickerProgress) Start(label string, total uint64) {
	p.label, p.total, p.start = label, total, time.Now()
	p.checked.Store(0)
	p.stop = make(chan struct{})
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				p.report()
			}
		}
	}()
}

func (p *tickerProgress) report() {
	c := p.checked.Load()
	e := time.Since(p.start).Seconds()
	if e <= 0 {
		return
	}
	p.log.Info("progress",
		"pass", p.label,
		"checked", c,
		"total", p.total,
		"speed", fmt.Sprintf("%.0f/s", float64(c)/e),
		"elapsed", time.Since(p.start).Round(100*time.Millisecond))
}

func (p *tickerProgress) Add(n uint64) { p.checked.Add(n) }

func (p *tickerProgress) Finish() {
	close(p.stop)
	<-p.done
}
