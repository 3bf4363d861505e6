package system

import (
	"go-research/internal/common/api"
	"go-research/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

type MetricsApi struct {
	Metrics *metrics.Metrics
}

func NewMetricsApi(m *metrics.Metrics) api.Route {
	return &MetricsApi{Metrics: m}
}

func (api *MetricsApi) Setup(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(api.Metrics.Handler()))
}
