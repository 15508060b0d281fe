/*
Package metrics defines and registers this service's Prometheus metrics
and exposes them over the standard /metrics endpoint via promhttp.

# Metrics Catalog

eventstore_publish_total{topic}:
  - Type: Counter
  - Total events published, by topic.

eventstore_publish_duration_seconds{topic}:
  - Type: Histogram
  - Publish RPC duration including the round trip to the backend.

eventstore_active_subscriptions:
  - Type: Gauge
  - Currently open subscribe streams across all topics.

eventstore_follow_batch_size:
  - Type: Histogram
  - Observed once with value 1 per notification the subscribe handler
    sends, not once per backend read with that read's entry count.

eventstore_handler_faults_total:
  - Type: Counter
  - Panics recovered in the server's subscribe handler. pkg/client logs
    its own recovered handler panics and does not count them here.

# Usage

Collector implements rpcserver.Recorder, so it's the thing a server
passes into rpcserver.NewServer:

	mux := subscribe.NewMultiplexer(engine, blockMS)
	collector := metrics.NewCollector(mux)
	collector.Start()
	defer collector.Stop()

	srv := rpcserver.NewServer(engine, mux, collector, cfg.MaxWorkers)

Timer is a small convenience for histogram observations:

	timer := metrics.NewTimer()
	// ... do work ...
	timer.ObserveDurationVec(metrics.PublishDuration, topic)
*/
package metrics
