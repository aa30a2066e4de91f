// Package metrics defines the Prometheus collectors of a pipeline run.
//
// A run is a batch job, so nothing is served over HTTP. The registry can be written to a
// node_exporter textfile once the run has finished.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "tweetpulse"

// NewRegistry creates a Prometheus registry with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// WriteTextfile writes all metrics gathered from g to path in the text exposition format.
// The file is replaced atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

// PipelineMetrics holds the metrics of the load, filter, score and report stages.
type PipelineMetrics struct {
	RowsLoaded     prometheus.Counter
	RowsFiltered   *prometheus.CounterVec
	RowsScored     prometheus.Counter
	StageDuration  *prometheus.HistogramVec
	Correlation    *prometheus.GaugeVec
	ChartsRendered prometheus.Counter
	Runs           *prometheus.CounterVec
}

// NewPipelineMetrics creates and registers pipeline metrics on the given registry.
func NewPipelineMetrics(reg prometheus.Registerer) *PipelineMetrics {
	m := &PipelineMetrics{
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_loaded_total",
			Help:      "Total number of dataset rows loaded.",
		}),
		RowsFiltered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_filtered_total",
			Help:      "Total number of rows removed before scoring, by reason.",
		}, []string{"reason"}),
		RowsScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_scored_total",
			Help:      "Total number of rows scored by the lexicon analyzer.",
		}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage in seconds.",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
		}, []string{"stage"}),
		Correlation: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "label_correlation",
			Help:      "Pearson coefficient between the sentiment label and an engagement metric.",
		}, []string{"metric"}),
		ChartsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "charts_rendered_total",
			Help:      "Total number of chart files written.",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of pipeline runs, by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(m.RowsLoaded, m.RowsFiltered, m.RowsScored, m.StageDuration, m.Correlation, m.ChartsRendered, m.Runs)
	return m
}
