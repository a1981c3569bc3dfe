package calc_go

import (
	"fmt"
	"io"
	"time"
)

type Metric struct {
	name string
	/// Number of times we've hit the code path.
	count int
	/// Total time we've spent on the code path.
	sum time.Duration
}

// / Per-phase timing, enabled with -d stats. Not safe for concurrent use.
type Metrics struct {
	metrics_ []*Metric
	by_name_ map[string]*Metric
}

func NewMetrics() *Metrics {
	ret := Metrics{}
	ret.by_name_ = make(map[string]*Metric)
	return &ret
}

func (this *Metrics) NewMetric(name string) *Metric {
	if metric, ok := this.by_name_[name]; ok {
		return metric
	}
	metric := Metric{}
	metric.name = name
	this.metrics_ = append(this.metrics_, &metric)
	this.by_name_[name] = &metric
	return &metric
}

// Record adds one call of the named code path that started at start.
// It is a no-op on a nil *Metrics.
func (this *Metrics) Record(name string, start time.Time) {
	if this == nil {
		return
	}
	metric := this.NewMetric(name)
	metric.count++
	metric.sum += time.Since(start)
}

// / Print a summary report to w.
func (this *Metrics) Report(w io.Writer) {
	width := 0
	for _, i := range this.metrics_ {
		width = max(len(i.name), width)
	}

	fmt.Fprintf(w, "%-*s\t%-6s\t%-9s\t%s\n", width,
		"metric", "count", "avg (us)", "total (ms)")
	for _, metric := range this.metrics_ {
		micros := metric.sum.Microseconds()
		total := float64(micros) / float64(1000)
		avg := float64(micros) / float64(metric.count)
		fmt.Fprintf(w, "%-*s\t%-6d\t%-8.1f\t%.1f\n", width, metric.name, metric.count, avg, total)
	}
}
