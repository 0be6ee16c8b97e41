package main

import (
	"html/template"
	"net/http"

	"crime-dashboard/internal/config"
	"crime-dashboard/internal/dataset"
	"crime-dashboard/internal/handler"
	"crime-dashboard/internal/middleware"
	"crime-dashboard/internal/service"
	"crime-dashboard/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Initialize layers
	store := dataset.NewStore()

	dashboardService := service.NewDashboardService(store, config.IncidentsPath, config.GeocodesPath)

	dashboardHandler := handler.NewDashboardHandler(dashboardService, config.PageTitle)

	r := gin.New()
	r.Use(middleware.Logger(log.Logger), gin.Recovery())

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.tmpl")))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/", dashboardHandler.Page)
	r.GET("/api/incidents", dashboardHandler.Incidents)
	r.GET("/api/filters", dashboardHandler.Filters)

	log.Info().Str("address", config.ServerAddress).Msg("starting dashboard server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
