package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/client"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/config"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/console"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	api := client.New(cfg.APIBaseURL, cfg.SessionCookieName)
	con, err := console.New(cfg, api)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build console")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ConsolePort),
		Handler:      con.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Msgf("inventory console listening on :%d", cfg.ConsolePort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down console…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("console exited")
}
