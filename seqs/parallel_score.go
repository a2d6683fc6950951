package seqs

import (
	"context"
	"iter"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
)

type parallelConfig struct {
	ctx     context.Context
	workers int
}

type ParallelOption func(*parallelConfig)

func WithContext(ctx context.Context) ParallelOption {
	return func(o *parallelConfig) {
		o.ctx = ctx
	}
}

func WithWorkers(count int) ParallelOption {
	return func(o *parallelConfig) {
		if count < 1 {
			count = 1
		}
		o.workers = count
	}
}

type scoreResult[T, R any] struct {
	idx  int
	item Scored[T, R]
	err  error
}

// scoreExecutor manages one parallel scoring pass.
type scoreExecutor[T, R any] struct {
	ctx   context.Context
	score func(Window[T]) (R, error)
	pool  *ants.Pool

	results chan scoreResult[T, R]

	// in-flight score calls
	tasks sync.WaitGroup
	// feeder goroutine
	feederWg sync.WaitGroup
}

// Feeder: submits every window to the pool, then closes results once all
// submitted work has reported.
func (e *scoreExecutor[T, R]) startFeeder(windows iter.Seq[Window[T]]) {
	e.feederWg.Add(1)
	go func() {
		defer e.feederWg.Done()
		defer func() {
			e.tasks.Wait()
			close(e.results)
		}()

		idx := 0
		for w := range windows {
			if e.ctx.Err() != nil {
				return
			}
			i, win := idx, w
			e.tasks.Add(1)
			err := e.pool.Submit(func() {
				defer e.tasks.Done()
				e.process(i, win)
			})
			if err != nil {
				e.tasks.Done()
				e.send(scoreResult[T, R]{
					idx:  i,
					item: Scored[T, R]{Window: win},
					err:  errors.Wrap(err, "submit window"),
				})
				return
			}
			idx++
		}
	}()
}

func (e *scoreExecutor[T, R]) process(idx int, w Window[T]) {
	if e.ctx.Err() != nil {
		return
	}
	res := scoreResult[T, R]{idx: idx, item: Scored[T, R]{Window: w}}
	func() {
		defer func() {
			if p := recover(); p != nil {
				res.err = errors.Errorf("panic in score: %v", p)
			}
		}()
		res.item.Value, res.err = e.score(w)
	}()
	e.send(res)
}

func (e *scoreExecutor[T, R]) send(res scoreResult[T, R]) {
	select {
	case e.results <- res:
	case <-e.ctx.Done():
	}
}

// collect yields results in window order, parking early arrivals.
func (e *scoreExecutor[T, R]) collect(yield func(Scored[T, R], error) bool) bool {
	pending := make(map[int]scoreResult[T, R])
	nextIdx := 0

	for res := range e.results {
		if res.idx != nextIdx {
			pending[res.idx] = res
			continue
		}
		if !yield(res.item, res.err) {
			return false
		}
		nextIdx++
		for {
			parked, ok := pending[nextIdx]
			if !ok {
				break
			}
			delete(pending, nextIdx)
			if !yield(parked.item, parked.err) {
				return false
			}
			nextIdx++
		}
	}
	return true
}

func scoreSerial[T, R any](ctx context.Context, windows iter.Seq[Window[T]], score func(Window[T]) (R, error), yield func(Scored[T, R], error) bool) {
	for s, err := range Centered(windows, score) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			yield(Scored[T, R]{}, ctxErr)
			return
		}
		if !yield(s, err) {
			return
		}
	}
}

// ParallelScore is Centered with the score calls spread over a pool of
// workers. Results are yielded in window order whatever order the calls
// finish in, which suits slow scorers such as external programs.
//
// A panic in score is recovered and yielded as that window's error. When the
// consumer stops early no further windows are submitted. If the context given
// with WithContext is cancelled the sequence ends with the context error.
func ParallelScore[T, R any](windows iter.Seq[Window[T]], score func(Window[T]) (R, error), opts ...ParallelOption) iter.Seq2[Scored[T, R], error] {
	if score == nil {
		panic("strider.ParallelScore: score cannot be nil")
	}
	cfg := parallelConfig{
		ctx:     context.Background(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(yield func(Scored[T, R], error) bool) {
		if cfg.workers < 2 {
			scoreSerial(cfg.ctx, windows, score, yield)
			return
		}

		pool, err := ants.NewPool(cfg.workers)
		if err != nil {
			yield(Scored[T, R]{}, errors.Wrap(err, "create worker pool"))
			return
		}

		ctx, cancel := context.WithCancel(cfg.ctx)
		exec := &scoreExecutor[T, R]{
			ctx:     ctx,
			score:   score,
			pool:    pool,
			results: make(chan scoreResult[T, R], cfg.workers*2),
		}

		// stop the feeder before releasing the pool it submits to
		defer func() {
			cancel()
			exec.feederWg.Wait()
			pool.Release()
		}()

		exec.startFeeder(windows)
		if !exec.collect(yield) {
			return
		}
		if err := cfg.ctx.Err(); err != nil {
			yield(Scored[T, R]{}, err)
		}
	}
}
