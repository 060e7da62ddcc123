package frudev

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeEeprom   = "eeprom"
	outcomeNoSource = "no_source"
)

var (
	scansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "frudev",
		Name:      "scans_total",
		Help:      "Number of inventory scans by outcome.",
	}, []string{"outcome"})

	scanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "frudev",
		Name:      "scan_duration_seconds",
		Help:      "Time spent reading and decoding the EEPROM per scan.",
	})

	sourceInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "frudev",
		Name:      "eeprom_source_info",
		Help:      "Set to 1 for the EEPROM candidate decoded by the last scan, 0 for the others.",
	}, []string{"path"})
)
