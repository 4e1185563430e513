// Package metrics exposes Prometheus counters for cascade outcomes.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ItemsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "closet_items_deleted_total",
		Help: "Items deleted by their owner.",
	})
	CascadeOutfitsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "closet_cascade_outfits_deleted_total",
		Help: "Outfits deleted because an item cascade emptied them.",
	})
	CascadeListsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "closet_cascade_lists_deleted_total",
		Help: "Lists deleted because an item cascade emptied them.",
	})
)

// Handler serves the Prometheus scrape endpoint through Fiber.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
