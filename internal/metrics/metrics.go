// Package metrics counts console commands with Prometheus collectors.
//
// Collectors are registered on a caller-supplied registry rather than the global default, so a process can run
// several consoles (or tests) without duplicate registration panics. Nothing here serves HTTP; the REPL logs a
// [Recorder.Summary] when it exits.
package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ytplayer"

// Recorder holds the console collectors.
type Recorder struct {
	gatherer       prometheus.Gatherer
	CommandsTotal  *prometheus.CounterVec
	PlaybackStarts prometheus.Counter
	Playlists      prometheus.Gauge
}

// New registers the console collectors on reg. A nil reg gets a fresh registry.
func New(reg *prometheus.Registry) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Recorder{
		gatherer: reg,
		CommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "commands_total",
				Help:      "Total number of console commands by name and outcome",
			},
			[]string{"command", "outcome"},
		),
		PlaybackStarts: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "playback_starts_total",
				Help:      "Total number of videos started by PLAY, PLAY_RANDOM or a search selection",
			},
		),
		Playlists: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "playlists",
				Help:      "Number of playlists currently in the store",
			},
		),
	}
}

// ObserveCommand implements console.Observer.
func (r *Recorder) ObserveCommand(command, outcome string) {
	r.CommandsTotal.WithLabelValues(command, outcome).Inc()
}

// ObservePlayback implements console.Observer.
func (r *Recorder) ObservePlayback() {
	r.PlaybackStarts.Inc()
}

// ObservePlaylists implements console.Observer.
func (r *Recorder) ObservePlaylists(n int) {
	r.Playlists.Set(float64(n))
}

// Summary flattens the command counter into "command/outcome" -> count, for logging.
func (r *Recorder) Summary() (map[string]float64, error) {
	families, err := r.gatherer.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != namespace+"_commands_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var command, outcome string
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "command":
					command = lp.GetValue()
				case "outcome":
					outcome = lp.GetValue()
				}
			}
			out[command+"/"+outcome] = m.GetCounter().GetValue()
		}
	}
	return out, nil
}

// SummaryKV returns [Recorder.Summary] as sorted key-value pairs for structured loggers.
func (r *Recorder) SummaryKV() ([]any, error) {
	summary, err := r.Summary()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kv := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		kv = append(kv, k, summary[k])
	}
	return kv, nil
}
