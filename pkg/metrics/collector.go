package metrics

import (
	"time"

	"github.com/cuemby/eventstore/pkg/subscribe"
)

// activeCounter is the subset of subscribe.Multiplexer the Collector polls.
type activeCounter interface {
	ActiveCount() int
}

// Collector implements rpcserver.Recorder: publish/follow-batch/handler-fault
// observations are pushed in directly from the call sites that produce
// them, while ActiveSubscriptions is polled from the multiplexer on a
// ticker, mirroring the teacher's periodic-poll Collector shape.
type Collector struct {
	mux    activeCounter
	stopCh chan struct{}
}

// NewCollector creates a Collector polling mux for its active-subscription
// count.
func NewCollector(mux *subscribe.Multiplexer) *Collector {
	return &Collector{mux: mux, stopCh: make(chan struct{})}
}

// Start begins the polling loop.
func (c *Collector) Start() {
	ticker := time.NewTicker(5 * time.Second)
	go func() {
		c.poll()
		for {
			select {
			case <-ticker.C:
				c.poll()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the polling loop.
func (c *Collector) Stop() {
	close(c.stopCh)
}

func (c *Collector) poll() {
	ActiveSubscriptions.Set(float64(c.mux.ActiveCount()))
}

// ObservePublish records a successful publish against topic.
func (c *Collector) ObservePublish(topic string, d time.Duration) {
	PublishTotal.WithLabelValues(topic).Inc()
	PublishDuration.WithLabelValues(topic).Observe(d.Seconds())
}

// SetActiveSubscriptions overrides the polled gauge immediately, used right
// after a subscription closes so the metric doesn't wait for the next tick.
// Openings are picked up by the next poll.
func (c *Collector) SetActiveSubscriptions(n int) {
	ActiveSubscriptions.Set(float64(n))
}

// ObserveFollowBatch records n in the follow batch histogram; the RPC
// surface calls it with 1 for each notification it sends.
func (c *Collector) ObserveFollowBatch(n int) {
	FollowBatchSize.Observe(float64(n))
}

// IncHandlerFault records one recovered subscription handler panic.
func (c *Collector) IncHandlerFault() {
	HandlerFaultsTotal.Inc()
}
