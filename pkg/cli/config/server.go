package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr              string
	DeleteConcurrency int
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("CARELEDGER_ADDR"),
			Destination: &s.Addr,
		},
		&cli.IntFlag{
			Name:        "delete-concurrency",
			Usage:       "Maximum concurrent deletions per bulk delete request (0 for unlimited)",
			Value:       0,
			Sources:     cli.EnvVars("CARELEDGER_DELETE_CONCURRENCY"),
			Destination: &s.DeleteConcurrency,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Int("delete_concurrency", s.DeleteConcurrency),
	)
}
