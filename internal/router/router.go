package router

import (
	"net/http"
	"strings"

	"github.com/damage-control/damage-service/api"
	"github.com/damage-control/damage-service/internal/handler"
	"github.com/damage-control/damage-service/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func New(ticketHandler *handler.TicketHandler, orderHandler *handler.OrderHandler) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(metrics.Middleware())

	r.GET("/health", handler.Health)
	r.GET("/ready", handler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/") })
	r.GET("/swagger/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "openapi.json" {
			c.Data(http.StatusOK, "application/json", api.OpenAPISpec)
			return
		}
		if strings.TrimPrefix(c.Param("any"), "/") == "" {
			c.Request.URL.Path = "/swagger/index.html"
			c.Request.RequestURI = "/swagger/index.html"
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/openapi.json"))(c)
	})

	r.GET("/tickets", ticketHandler.List)
	r.GET("/tickets/:id", ticketHandler.Get)
	r.POST("/tickets", ticketHandler.Create)
	r.POST("/tickets/bulk", ticketHandler.BulkImport)
	r.PATCH("/tickets/:id", ticketHandler.Update)
	r.DELETE("/tickets/:id", ticketHandler.Delete)
	r.DELETE("/tickets", ticketHandler.DeleteAll)

	r.GET("/orders", orderHandler.List)
	r.POST("/orders/bulk", orderHandler.BulkImport)
	r.DELETE("/orders", orderHandler.DeleteAll)

	return r
}
