// Package worker replays independent move lines on a pool of goroutines.
// Positions are plain values, so items share nothing and need no locking.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/fenmove-go/internal/engine"
)

// WorkItem is one line to replay: a start position and the moves after it.
type WorkItem struct {
	Start  engine.Position
	Moves  []string
	Source string // Raw input line, for reporting
	Index  int    // Input order, used to restore it

	// Err is a failure found before replay, such as a malformed FEN.
	// Such items pass through the pool without being replayed.
	Err error
}

// ProcessResult is the outcome of replaying a WorkItem.
type ProcessResult struct {
	Index     int
	Source    string
	Start     engine.Position
	Moves     []string
	Positions []engine.Position // Start first, then one per successful move; empty if never replayed
	Err       error
}

// Replayed reports whether the item got as far as its start position.
func (r ProcessResult) Replayed() bool {
	return len(r.Positions) > 0
}

// Final returns the last position reached.
func (r ProcessResult) Final() engine.Position {
	if len(r.Positions) == 0 {
		return r.Start
	}
	return r.Positions[len(r.Positions)-1]
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Replayer returns a ProcessFunc that replays each item's moves, stopping
// after maxPlies moves when maxPlies is non-zero.
func Replayer(maxPlies uint) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		if item.Err != nil {
			return ProcessResult{Index: item.Index, Source: item.Source, Err: item.Err}
		}
		moves := item.Moves
		if maxPlies > 0 && uint(len(moves)) > maxPlies {
			moves = moves[:maxPlies]
		}
		positions, err := item.Start.Replay(moves)
		return ProcessResult{
			Index:     item.Index,
			Source:    item.Source,
			Start:     item.Start,
			Moves:     moves,
			Positions: positions,
			Err:       err,
		}
	}
}

// Pool manages a pool of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool with the given worker count and buffer size.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new items.
// Items already queued are drained but not processed.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish,
// then closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Ordered reads results and hands them to emit in Index order, starting
// at first. Results that arrive early are held until their turn. If emit
// returns false, Ordered keeps draining results but emits nothing more.
// Indices must be dense; a gap holds back everything after it.
func Ordered(results <-chan ProcessResult, first int, emit func(ProcessResult) bool) {
	pending := make(map[int]ProcessResult)
	next := first
	emitting := true
	for result := range results {
		if !emitting {
			continue
		}
		pending[result.Index] = result
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if !emit(r) {
				emitting = false
				break
			}
		}
	}
}
