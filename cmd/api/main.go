package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	handler "github.com/pvictorr/SpotifyDownloader-API/internal/adapters/http"
	"github.com/pvictorr/SpotifyDownloader-API/internal/adapters/spotdl"
	"github.com/pvictorr/SpotifyDownloader-API/internal/app"
	"github.com/pvictorr/SpotifyDownloader-API/internal/config"
	"github.com/pvictorr/SpotifyDownloader-API/internal/logging"

	_ "github.com/pvictorr/SpotifyDownloader-API/docs"
)

// @title			SpotifyDownloader API
// @version		1.0
// @description	API for downloading Spotify tracks, playlists and albums as MP3 via spotdl.
// @description	Supports synchronous downloads and background jobs with progress streaming.

// @contact.name	SpotifyDownloader API Support
// @license.name	MIT

// @host		localhost:8080
// @BasePath	/
func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	// Wire the retrieval engine and services
	engine := spotdl.New(cfg.SpotdlBin, logger)
	downloadService := app.NewDownloadService(engine, cfg.DownloadPath, logger)
	jobService := app.NewJobService(downloadService, logger)

	// Setup HTTP server
	r := gin.Default()
	h := handler.NewHandler(downloadService, jobService, cfg.DownloadPath)
	h.RegisterRoutes(r)

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Msg("Starting SpotifyDownloader API")
	logger.Info().Str("bin", cfg.SpotdlBin).Str("path", cfg.DownloadPath).Msg("Retrieval engine configured")
	logger.Info().Str("url", "http://localhost"+addr+"/swagger/index.html").Msg("Swagger UI")

	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
