package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/lamare/creator-studio/internal/api/metrics"
	"github.com/lamare/creator-studio/internal/core/service"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Processor consumes one generation job and reports how it ended.
type Processor interface {
	Process(ctx context.Context, job service.GenerationJob) service.GenerationOutcome
}

// Dispatcher routes generation jobs to a fixed set of workers using
// consistent hashing on the workflow kind, so results for one kind
// complete in submission order and supersession checks stay simple.
type Dispatcher struct {
	workers   []chan service.GenerationJob
	processor Processor
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor Processor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan service.GenerationJob, numWorkers),
		processor: processor,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan service.GenerationJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its kind. The call is
// non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job service.GenerationJob) {
	idx := d.shardIndex(string(job.Kind))
	// Incremented before the send so the gauge never dips below zero when a
	// worker drains the job first.
	metrics.GenerationQueueDepth.WithLabelValues(string(job.Kind)).Inc()
	d.workers[idx] <- job
}

// shardIndex maps a workflow kind deterministically to a worker index.
func (d *Dispatcher) shardIndex(kind string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(kind))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan service.GenerationJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			kind := string(job.Kind)
			metrics.GenerationQueueDepth.WithLabelValues(kind).Dec()

			start := time.Now()
			outcome := d.processor.Process(ctx, job)
			metrics.GenerationDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())

			if outcome.Fallback {
				metrics.GenerationFallbacks.WithLabelValues(kind).Inc()
			}
			if !outcome.Applied {
				metrics.GenerationDiscarded.WithLabelValues(kind).Inc()
				d.log.Debug().Str("kind", kind).Int("worker_id", id).Msg("superseded generation result dropped")
			}
		}
	}
}
