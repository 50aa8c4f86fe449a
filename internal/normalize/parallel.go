package normalize

import (
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// WorkItem holds one raw target name awaiting normalization.
type WorkItem struct {
	Seq   int
	Name  string
	Extra any // caller-specific data carried through unchanged (e.g. the input row)
}

// WorkResult holds the normalization output for a single name.
type WorkResult struct {
	Seq   int
	Res   Result
	Extra any
}

// Pool normalizes work items with a fixed number of workers. Rows are
// independent, so no synchronization is needed beyond the channels.
type Pool struct {
	workers int
	logger  *zap.Logger
}

// NewPool creates a pool. If workers is 0 or negative, runtime.NumCPU()
// is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{
		workers: workers,
		logger:  zap.NewNop(),
	}
}

// SetLogger replaces the default no-op logger.
func (p *Pool) SetLogger(logger *zap.Logger) {
	p.logger = logger
}

// Run normalizes the items and sends results to the returned channel in
// arrival order (not sequence order); use OrderedCollect to consume them
// in sequence-number order.
func (p *Pool) Run(items <-chan WorkItem, opts Options) <-chan WorkResult {
	results := make(chan WorkResult, 2*p.workers)

	var wg sync.WaitGroup
	wg.Add(p.workers)

	for i := 0; i < p.workers; i++ {
		go func() {
			defer wg.Done()
			for item := range items {
				res := Normalize(item.Name, opts)
				p.logger.Debug("normalized target",
					zap.Int("seq", item.Seq),
					zap.String("name", item.Name),
					zap.Int("candidates", len(res.GeneLikeCandidates)))
				results <- WorkResult{
					Seq:   item.Seq,
					Res:   res,
					Extra: item.Extra,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each result in sequence-number order. It
// buffers out-of-order results in a pending map and emits them as soon as
// the next expected sequence number is available. Blocks until the results
// channel is closed.
func OrderedCollect(results <-chan WorkResult, fn func(WorkResult) error) error {
	pending := make(map[int]WorkResult)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
