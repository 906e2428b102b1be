package service

import "github.com/prometheus/client_golang/prometheus"

var (
	ledgerEntriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landmark_points_ledger_entries_total",
			Help: "Committed points ledger entries",
		},
		[]string{"change_type", "direction"},
	)

	checkinRejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landmark_checkin_rejections_total",
			Help: "Rejected check-in attempts by cause",
		},
		[]string{"cause"},
	)
)

func init() {
	prometheus.MustRegister(ledgerEntriesTotal)
	prometheus.MustRegister(checkinRejectionsTotal)
}
