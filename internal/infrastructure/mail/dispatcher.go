package mail

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher delivers welcome emails asynchronously through a fixed set of
// workers sharded by recipient address, so messages to the same address keep
// their order. Delivery failures are logged and counted, never surfaced.
type Dispatcher struct {
	workers []chan string
	mailer  ports.Mailer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan string, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a recipient to the worker responsible for it. The call is
// non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(email string) {
	d.workers[d.shardIndex(email)] <- email
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case email, ok := <-ch:
			if !ok {
				return
			}
			if err := d.mailer.SendWelcome(ctx, email); err != nil {
				metrics.EmailsTotal.WithLabelValues("welcome", "error").Inc()
				d.log.Error().Err(err).
					Str("recipient", email).
					Int("worker_id", id).
					Msg("welcome email failed")
				continue
			}
			metrics.EmailsTotal.WithLabelValues("welcome", "ok").Inc()
		}
	}
}
