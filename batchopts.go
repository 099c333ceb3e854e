package zzfsm

import "github.com/rs/zerolog"

// BatchOption functions optionally alter how MatchAll operates.
type BatchOption = func(*batchConfig)

type batchConfig struct {
	goroutines int
	logger     zerolog.Logger
}

// WithGoroutineLimit sets the number of worker goroutines used by MatchAll.
// By default it is runtime.GOMAXPROCS(0). Values less than 1 mean one worker
// per input.
func WithGoroutineLimit(n int) BatchOption {
	return func(cfg *batchConfig) {
		cfg.goroutines = n
	}
}

// WithTraceLogs logs the result of every match, at trace level, to the
// provided logger. Disabled by default.
func WithTraceLogs(l zerolog.Logger) BatchOption {
	return func(cfg *batchConfig) {
		cfg.logger = l
	}
}
