package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/teller/internal/operator/actions"
	"github.com/carson-networks/teller/internal/storage"
)

var ErrStopped = errors.New("operator delegator is stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
// With one worker it is the single writer for the whole storage.
type OperatorDelegator struct {
	storage    *storage.Storage
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
	stateMu    sync.RWMutex
	stopped    bool
}

func NewOperatorDelegator(s *storage.Storage, numWorkers int, queueSize int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &OperatorDelegator{
		storage:    s,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.stateMu.Lock()
		d.stopped = true
		close(d.queue)
		d.stateMu.Unlock()
		d.wg.Wait()
	})
}

// Process enqueues action and waits for its outcome. Once queued, the
// action is either committed and nil returned, or rolled back and its error
// (ctx.Err() when ctx ended first) returned. The action's result fields are
// only valid when the returned error is nil.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	resp := <-respCh
	return resp.err
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.stateMu.RLock()
	defer d.stateMu.RUnlock()

	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
