package main

import (
	"context"
	"os"

	"github.com/pvictorr/SpotifyDownloader-API/internal/adapters/console"
	"github.com/pvictorr/SpotifyDownloader-API/internal/adapters/spotdl"
	"github.com/pvictorr/SpotifyDownloader-API/internal/app"
	"github.com/pvictorr/SpotifyDownloader-API/internal/config"
	"github.com/pvictorr/SpotifyDownloader-API/internal/logging"
)

func main() {
	cfg := config.Load()
	// Keep the prompt clean: only warnings and errors reach the terminal.
	logger := logging.NewWithWriter("warn", os.Stderr)

	engine := spotdl.New(cfg.SpotdlBin, logger)
	downloadService := app.NewDownloadService(engine, cfg.DownloadPath, logger)

	c := console.New(downloadService, cfg.DownloadPath, os.Stdin, os.Stdout)
	if err := c.Run(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("console session failed")
	}
}
