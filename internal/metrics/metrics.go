package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/minimax"
)

const namespace = "tictactoe"

const (
	resultHit  = "hit"
	resultMiss = "miss"
)

// Collector exports solver and cache activity. It implements minimax.Observer.
type Collector struct {
	searches       *prometheus.CounterVec
	nodes          prometheus.Counter
	searchDuration prometheus.Histogram
	tableLookups   *prometheus.CounterVec
	cacheLookups   *prometheus.CounterVec
}

var _ minimax.Observer = (*Collector)(nil)

func New(registerer prometheus.Registerer) *Collector {
	collector := &Collector{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Total number of minimax searches by player to move",
			},
			[]string{"player"},
		),
		nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_nodes_total",
			Help:      "Total number of positions visited by minimax searches",
		}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Duration of minimax searches",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		tableLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transposition_lookups_total",
				Help:      "Transposition table lookups by result",
			},
			[]string{"result"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solution_cache_lookups_total",
				Help:      "Solution cache lookups by result",
			},
			[]string{"result"},
		),
	}

	registerer.MustRegister(
		collector.searches,
		collector.nodes,
		collector.searchDuration,
		collector.tableLookups,
		collector.cacheLookups,
	)

	return collector
}

func (that *Collector) SearchFinished(player entity.Mark, result minimax.Result) {
	that.searches.WithLabelValues(player.String()).Inc()
	that.nodes.Add(float64(result.Nodes))
	that.searchDuration.Observe(result.Duration.Seconds())
}

func (that *Collector) TableLookup(hit bool) {
	that.tableLookups.WithLabelValues(lookupResult(hit)).Inc()
}

func (that *Collector) CacheLookup(hit bool) {
	that.cacheLookups.WithLabelValues(lookupResult(hit)).Inc()
}

func lookupResult(hit bool) string {
	if hit {
		return resultHit
	}

	return resultMiss
}
