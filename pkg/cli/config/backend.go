package config

import (
	"log/slog"
	"time"

	"github.com/careledger/careledger/pkg/client"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Backend holds the configuration for talking to a careledger server
type Backend struct {
	URL       string
	Principal string
	Timeout   time.Duration
}

// Flags returns CLI flags for Backend configuration
func (b *Backend) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend-url",
			Usage:       "Base URL of the careledger server",
			Category:    "Backend",
			Value:       "http://localhost:8080",
			Sources:     cli.EnvVars("CARELEDGER_BACKEND_URL"),
			Destination: &b.URL,
		},
		&cli.StringFlag{
			Name:        "principal",
			Usage:       "Caller identity sent to the server (empty for anonymous)",
			Category:    "Backend",
			Sources:     cli.EnvVars("CARELEDGER_PRINCIPAL"),
			Destination: &b.Principal,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Timeout of one backend request",
			Category:    "Backend",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("CARELEDGER_TIMEOUT"),
			Destination: &b.Timeout,
		},
	}
}

// Configure creates a backend client
func (b *Backend) Configure() (*client.Client, error) {
	return client.New(b.URL,
		client.WithPrincipal(types.Principal(b.Principal)),
		client.WithTimeout(b.Timeout),
	)
}

// LogValue returns structured log value
func (b Backend) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", b.URL),
		slog.String("principal", b.Principal),
		slog.Duration("timeout", b.Timeout),
	)
}
