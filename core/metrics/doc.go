// Package metrics defines the events emitted by price acquisitions and cost
// estimates and the sink interface that records them. Implementations such
// as PromSink and InfluxSink live in infra/metrics and can be combined with
// a MultiSink.
package metrics
