// Package metrics records redraw statistics in a private Prometheus registry.
package metrics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Recorder struct {
	registry   *prometheus.Registry
	redraws    *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	internSize prometheus.Gauge
	wins       *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		redraws: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "votesim_redraws_total",
				Help: "Full simulate and render passes by voting system and outcome.",
			},
			[]string{"system", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "votesim_redraw_duration_seconds",
				Help:    "Wall time of one simulate and render pass.",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			},
			[]string{"system"},
		),
		internSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "votesim_intern_rankings",
			Help: "Distinct runoff rankings held by the interner.",
		}),
		wins: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "votesim_candidate_pixels",
				Help: "Pixels won by each candidate in the last redraw.",
			},
			[]string{"candidate"},
		),
	}
}

func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

func (r *Recorder) ObserveRedraw(system string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.redraws.WithLabelValues(system, outcome).Inc()
	if err == nil {
		r.duration.WithLabelValues(system).Observe(elapsed.Seconds())
	}
}

func (r *Recorder) SetInternSize(n int) {
	r.internSize.Set(float64(n))
}

// SetWins replaces the per-candidate pixel counts.
func (r *Recorder) SetWins(counts []int) {
	r.wins.Reset()
	for i, c := range counts {
		r.wins.WithLabelValues(strconv.Itoa(i)).Set(float64(c))
	}
}

// Snapshot flattens the registry into name{labels} -> value. Histograms
// contribute _count and _sum entries.
func (r *Recorder) Snapshot() (map[string]float64, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			pairs := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				pairs = append(pairs, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			sort.Strings(pairs)
			labels := ""
			if len(pairs) > 0 {
				labels = "{" + strings.Join(pairs, ",") + "}"
			}

			switch {
			case m.GetCounter() != nil:
				out[mf.GetName()+labels] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[mf.GetName()+labels] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				out[mf.GetName()+"_count"+labels] = float64(m.GetHistogram().GetSampleCount())
				out[mf.GetName()+"_sum"+labels] = m.GetHistogram().GetSampleSum()
			}
		}
	}
	return out, nil
}
