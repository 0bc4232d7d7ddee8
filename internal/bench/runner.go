// Package bench times container operations on builtin slices and on the
// contiguous containers and streams the measurements to a Sink.
package bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/eapache/queue"
	"go.uber.org/zap"

	"github.com/pavanmanishd/contiguous/internal/config"
)

// Usage is a snapshot of process resource counters.
type Usage struct {
	User        time.Duration
	System      time.Duration
	MaxRSSKiB   int64
	MinorFaults int64
	MajorFaults int64
}

// Summary describes a finished session.
type Summary struct {
	Records int
	Elapsed time.Duration
	Usage   Usage
}

type job struct {
	c    Case
	size int
	run  int
}

// Runner executes a session. Jobs are queued up front in session order and
// drained one at a time.
type Runner struct {
	cfg     config.Config
	sink    Sink
	logger  *zap.Logger
	pending *queue.Queue
}

func NewRunner(cfg config.Config, sink Sink, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Runner{
		cfg:     cfg,
		sink:    sink,
		logger:  logger,
		pending: queue.New(),
	}
	r.enqueue(VectorSuite, cfg.VectorSizes)
	r.enqueue(ArraySuite, cfg.ArraySizes)
	return r
}

// enqueue adds, for every size and run, every selected case of suite.
func (r *Runner) enqueue(suite Suite, sizes []int) {
	cases := Cases(suite, r.cfg)
	if len(cases) == 0 {
		return
	}
	for _, size := range sizes {
		for run := 1; run <= r.cfg.Runs; run++ {
			for _, c := range cases {
				r.pending.Add(job{c: c, size: size, run: run})
			}
		}
	}
}

// Pending returns the number of measurements not yet taken.
func (r *Runner) Pending() int {
	return r.pending.Length()
}

// Run drains the queue, writing one record per job. It stops at the first
// sink error or when ctx is done; unfinished jobs stay queued.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	start := time.Now()
	r.logger.Info("benchmark started",
		zap.Int("jobs", r.pending.Length()),
		zap.Int("runs", r.cfg.Runs),
		zap.Uint64("seed", r.cfg.Seed),
	)

	for r.pending.Length() > 0 {
		if err := ctx.Err(); err != nil {
			return sum, fmt.Errorf("bench: interrupted with %d jobs left: %w", r.pending.Length(), err)
		}
		j := r.pending.Remove().(job)

		rec := r.measure(j)
		if err := r.sink.Write(rec); err != nil {
			return sum, fmt.Errorf("bench: write %s %s: %w", rec.Container, rec.Operation, err)
		}
		sum.Records++

		r.logger.Debug("measured",
			zap.String("container", rec.Container),
			zap.String("operation", rec.Operation),
			zap.Int("size", rec.Size),
			zap.Int("run", rec.Run),
			zap.Duration("elapsed", rec.Elapsed),
		)
	}

	sum.Elapsed = time.Since(start)
	if u, err := readUsage(); err != nil {
		r.logger.Debug("resource usage unavailable", zap.Error(err))
	} else {
		sum.Usage = u
		r.logger.Info("resource usage",
			zap.Duration("user", u.User),
			zap.Duration("system", u.System),
			zap.Int64("max_rss_kib", u.MaxRSSKiB),
			zap.Int64("minor_faults", u.MinorFaults),
			zap.Int64("major_faults", u.MajorFaults),
		)
	}
	r.logger.Info("benchmark finished",
		zap.Int("records", sum.Records),
		zap.Duration("elapsed", sum.Elapsed),
	)
	return sum, nil
}

// measure prepares the case outside the timed region. The random source
// depends only on seed, size and run, so both containers of an operation
// see the same values.
func (r *Runner) measure(j job) Record {
	env := Env{
		Size: j.size,
		Rand: rand.New(rand.NewPCG(r.cfg.Seed, uint64(j.size)<<16|uint64(j.run))),
	}
	body := j.c.Prepare(env)
	return Record{
		Container: j.c.Container(j.size),
		Operation: j.c.Operation,
		Size:      j.size,
		Run:       j.run,
		Elapsed:   Measure(body),
	}
}

// Measure returns the wall time taken by fn.
func Measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
