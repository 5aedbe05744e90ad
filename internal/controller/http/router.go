package http

import (
	"CardCheckout/internal/controller/http/handlers"
	"CardCheckout/pkg/health"
	"CardCheckout/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	checkout       *handlers.CheckoutHandler
	order          *handlers.OrderHandler
	healthRegistry *health.Registry
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	co := engine.Group("/checkout")
	{
		co.GET("/payment-methods", r.checkout.PaymentMethods)
		co.POST("/orders/:order_id", r.checkout.Submit)
		co.GET("/appointment-date", r.checkout.AppointmentDate)
		co.POST("/appointment-date", r.checkout.SaveAppointmentDate)
	}

	engine.GET("/orders/:order_id", r.order.Get)
	engine.POST("/orders/:order_id/refunds", r.order.Refund)
}

func NewRouter(
	checkout *handlers.CheckoutHandler,
	order *handlers.OrderHandler,
	healthRegistry *health.Registry,
) *Router {
	return &Router{
		checkout:       checkout,
		order:          order,
		healthRegistry: healthRegistry,
	}
}
