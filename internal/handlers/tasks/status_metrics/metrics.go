package status_metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ShipmentsByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "shipments_by_status",
		Help: "Number of shipment records per status value",
	},
	[]string{"status"},
)
