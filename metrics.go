package columnation

import "github.com/prometheus/client_golang/prometheus"

// heapSizeDescs describes the two gauges a Collector built over this
// package's types reports: bytes currently in use, and bytes of capacity
// backing them. namespace/subsystem are supplied by the caller, since this
// package has no fixed namespace of its own the way a single binary would.
func heapSizeDescs(namespace, subsystem string) (used, capacity *prometheus.Desc) {
	used = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "heap_used_bytes"),
		"Bytes currently in use across this region's backing allocations.",
		nil, nil,
	)
	capacity = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "heap_capacity_bytes"),
		"Bytes of capacity backing this region's allocations.",
		nil, nil,
	)

	return used, capacity
}

// heapSizeCollector adapts any HeapSize-reporting value into a
// prometheus.Collector. It is unexported: callers obtain one through
// StableRegion.Collector or ColumnStack.Collector, which is how every
// region and stack in this package opts in to being scraped without
// requiring a running metrics server — registering the returned
// Collector with a prometheus.Registerer, if the caller runs one, is
// entirely their choice.
type heapSizeCollector struct {
	summed   func() (used, capacity uintptr)
	usedDesc *prometheus.Desc
	capDesc  *prometheus.Desc
}

func newHeapSizeCollector(namespace, subsystem string, summed func() (used, capacity uintptr)) *heapSizeCollector {
	used, capacity := heapSizeDescs(namespace, subsystem)

	return &heapSizeCollector{summed: summed, usedDesc: used, capDesc: capacity}
}

// Describe implements prometheus.Collector.
func (c *heapSizeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.usedDesc
	ch <- c.capDesc
}

// Collect implements prometheus.Collector.
func (c *heapSizeCollector) Collect(ch chan<- prometheus.Metric) {
	used, capacity := c.summed()
	ch <- prometheus.MustNewConstMetric(c.usedDesc, prometheus.GaugeValue, float64(used))
	ch <- prometheus.MustNewConstMetric(c.capDesc, prometheus.GaugeValue, float64(capacity))
}

// Collector returns a prometheus.Collector reporting r's HeapSize as two
// gauges under namespace/subsystem. Registering it is optional and left to
// the caller.
func (r *StableRegion[T]) Collector(namespace, subsystem string) prometheus.Collector {
	return newHeapSizeCollector(namespace, subsystem, func() (used, capacity uintptr) {
		r.HeapSize(func(u, c uintptr) {
			used += u
			capacity += c
		})

		return used, capacity
	})
}

// Collector returns a prometheus.Collector reporting s's SummedHeapSize as
// two gauges under namespace/subsystem. Registering it is optional and
// left to the caller.
func (s *ColumnStack[T, R]) Collector(namespace, subsystem string) prometheus.Collector {
	return newHeapSizeCollector(namespace, subsystem, s.SummedHeapSize)
}
