package zzfsm

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
)

// MatchFunc is called by MatchAll with the result of matching one input.
// err is the error (if any) from Match. If MatchFunc returns an error,
// MatchAll stops and returns it.
type MatchFunc = func(index int, input string, matched bool, err error) error

// MatchAll matches many inputs against the one machine, in parallel.
// Since matching never modifies the machine, the workers share it without
// any locking. You should either make sure that the callback f is safe to call
// concurrently from multiple goroutines, or set WithGoroutineLimit(1) (in
// which case f is called in input order).
func MatchAll(ctx context.Context, m *Machine, inputs []string, f MatchFunc, opts ...BatchOption) error {
	if m == nil {
		return errors.New("nil Machine in arg to MatchAll")
	}
	if f == nil {
		return errors.New("nil MatchFunc in arg to MatchAll")
	}

	cfg := &batchConfig{
		goroutines: runtime.GOMAXPROCS(0),
		logger:     zerolog.Nop(),
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}

	if len(inputs) == 0 {
		return nil
	}

	// Spin up this many worker goroutines.
	if cfg.goroutines <= 0 || cfg.goroutines > len(inputs) {
		cfg.goroutines = len(inputs)
	}
	workCh := make(chan int)
	wctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	var wg sync.WaitGroup
	for i := 0; i < cfg.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := matchWorker(wctx, cfg, m, inputs, f, workCh); err != nil {
				cancel(err)
			}
		}()
	}

	// Feed work to the workers
feed:
	for i := range inputs {
		select {
		case <-wctx.Done():
			break feed

		case workCh <- i:
			// work has been fed
		}
	}
	close(workCh)

	wg.Wait()
	return context.Cause(wctx)
}

func matchWorker(ctx context.Context, cfg *batchConfig, m *Machine, inputs []string, f MatchFunc, workCh <-chan int) error {
	for {
		var i int
		select {
		case idx, open := <-workCh:
			if !open {
				return nil
			}
			i = idx

		case <-ctx.Done():
			return context.Cause(ctx)
		}

		matched, err := m.Match(inputs[i])
		cfg.logger.Trace().
			Int("index", i).
			Str("input", inputs[i]).
			Bool("matched", matched).
			AnErr("error", err).
			Msg("matched input")

		if err := f(i, inputs[i], matched, err); err != nil {
			return err
		}
	}
}
