package main

import (
	"net/http"
	"os"

	"github.com/minaorangina/uno/config"
	"github.com/minaorangina/uno/internal/logging"
	"github.com/minaorangina/uno/server"
	"github.com/minaorangina/uno/store"
)

func main() {
	conf, err := config.LoadServer()
	if err != nil {
		logging.Stderr("uno-web", "info").Fatal("could not read configuration", "err", err)
	}

	logger := logging.Stderr("uno-web", conf.LogLevel)

	s := server.NewServer(store.NewInMemoryRunStore(), server.ServerOpts{
		MaxGames:   conf.MaxGames,
		Threads:    conf.Threads,
		MaxThreads: conf.MaxThreads,
		Logger:     logger,
		AccessLog:  os.Stdout,
	})
	s.Addr = conf.Addr()

	logger.Info("listening", "addr", s.Addr, "max_games", conf.MaxGames)
	if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", "err", err)
	}
}
