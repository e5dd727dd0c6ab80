package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Server holds the web server settings, read from the environment
type Server struct {
	Port     int    `env:"UNO_PORT,default=3000"`
	MaxGames int    `env:"UNO_MAX_GAMES,default=100000"`
	Threads  int    `env:"UNO_THREADS,default=4"`
	LogLevel string `env:"UNO_LOG_LEVEL,default=info"`

	// MaxThreads caps the threads a request may ask for. Zero means Threads.
	MaxThreads int `env:"UNO_MAX_THREADS"`
}

func LoadServer() (Server, error) {
	var s Server
	if err := envdecode.Decode(&s); err != nil {
		return Server{}, err
	}

	if s.Port < 1 || s.Port > 65535 {
		return Server{}, fmt.Errorf("invalid port %d", s.Port)
	}
	if s.MaxThreads < 0 {
		return Server{}, fmt.Errorf("invalid max threads %d", s.MaxThreads)
	}
	return s, nil
}

// Addr is the address to listen on
func (s Server) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}
