package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/campushire/recruitment-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher fans audit entries out to a fixed set of workers, sharding on
// the entry's scope id so all activity for one college is written in order.
// It implements ports.ActivityRecorder.
type Dispatcher struct {
	workers []chan ports.ActivityInput
	service ports.ActivityService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ActivityService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ActivityInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ActivityInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an entry to the worker owning its scope. Non-blocking up to
// channelBuffer capacity.
func (d *Dispatcher) Enqueue(in ports.ActivityInput) {
	d.workers[d.shardIndex(in.ScopeID)] <- in
}

// QueueDepths returns the number of entries currently buffered per worker,
// indexed by worker id. Used for gauge sampling.
func (d *Dispatcher) QueueDepths() []int {
	depths := make([]int, len(d.workers))
	for i, ch := range d.workers {
		depths[i] = len(ch)
	}
	return depths
}

// shardIndex maps a scope id deterministically to a worker index.
func (d *Dispatcher) shardIndex(scopeID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(scopeID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ActivityInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, in); err != nil {
				d.log.Error().Err(err).
					Str("action", in.Action).
					Str("scope_id", in.ScopeID).
					Int("worker_id", id).
					Msg("activity write failed")
			}
		}
	}
}
