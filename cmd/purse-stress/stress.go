package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"deedles.dev/purse"
	"golang.org/x/sync/errgroup"
)

type config struct {
	Workers  int
	Rounds   int
	BaseLen  int
	RightLen int
	Format   string
}

func (c config) validate() error {
	var errs []error
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %v", c.Workers))
	}
	if c.Rounds < 1 {
		errs = append(errs, fmt.Errorf("rounds must be positive, got %v", c.Rounds))
	}
	if c.BaseLen < 1 {
		errs = append(errs, fmt.Errorf("base length must be positive, got %v", c.BaseLen))
	}
	if c.RightLen < 1 {
		errs = append(errs, fmt.Errorf("right length must be positive, got %v", c.RightLen))
	}
	if c.Format != "yaml" && c.Format != "json" {
		errs = append(errs, fmt.Errorf("unknown format %q", c.Format))
	}
	return errors.Join(errs...)
}

type report struct {
	Rounds  int             `yaml:"rounds" json:"rounds"`
	Workers int             `yaml:"workers" json:"workers"`
	InPlace int64           `yaml:"in_place" json:"in_place"`
	Copied  int64           `yaml:"copied" json:"copied"`
	Elapsed time.Duration   `yaml:"elapsed" json:"elapsed"`
	Sample  purse.List[int] `yaml:"sample" json:"sample"`
}

func run(ctx context.Context, logger *slog.Logger, cfg config) (report, error) {
	r := report{Rounds: cfg.Rounds, Workers: cfg.Workers}
	start := time.Now()

	for round := range cfg.Rounds {
		err := ctx.Err()
		if err != nil {
			return r, err
		}

		inPlace, copied, sample, err := runRound(ctx, cfg)
		if err != nil {
			logger.Error("round failed", "round", round, "err", err)
			return r, fmt.Errorf("round %v: %w", round, err)
		}
		if inPlace != 1 {
			err := fmt.Errorf("round %v: expected exactly one in-place concatenation but got %v", round, inPlace)
			logger.Error("round failed", "round", round, "err", err)
			return r, err
		}

		r.InPlace += inPlace
		r.Copied += copied
		r.Sample = sample
		logger.Debug("round complete", "round", round, "in_place", inPlace, "copied", copied)
	}

	r.Elapsed = time.Since(start)
	logger.Info("stress run complete", "rounds", r.Rounds, "in_place", r.InPlace, "copied", r.Copied, "elapsed", r.Elapsed)
	return r, nil
}

func runRound(ctx context.Context, cfg config) (inPlace, copied int64, sample purse.List[int], err error) {
	want := make([]int, cfg.BaseLen)
	for i := range want {
		want[i] = i
	}
	base := purse.FromSeq(slices.Values(want))

	var nin, ncopy atomic.Int64
	results := make([]purse.List[int], cfg.Workers)

	eg, ctx := errgroup.WithContext(ctx)
	for w := range cfg.Workers {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			right := purse.FromSeq(slices.Values(rightValues(w, cfg.RightLen)))
			result := base.Concat(right)
			if result.Shares(base) {
				nin.Add(1)
			} else {
				ncopy.Add(1)
			}

			results[w] = result
			return nil
		})
	}
	err = eg.Wait()
	if err != nil {
		return 0, 0, sample, err
	}

	if got := purse.Collect(base); !slices.Equal(got, want) {
		return 0, 0, sample, fmt.Errorf("shared list changed to %v", base)
	}
	for w, result := range results {
		expected := append(slices.Clone(want), rightValues(w, cfg.RightLen)...)
		if result.Len() != len(expected) {
			return 0, 0, sample, fmt.Errorf("worker %v: length %v, expected %v", w, result.Len(), len(expected))
		}
		if got := purse.Collect(result); !slices.Equal(got, expected) {
			return 0, 0, sample, fmt.Errorf("worker %v: got %v, expected %v", w, got, expected)
		}
	}

	return nin.Load(), ncopy.Load(), results[0], nil
}

func rightValues(worker, n int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = -(worker*n + i + 1)
	}
	return vals
}
