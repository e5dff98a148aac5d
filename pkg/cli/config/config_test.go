package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/careledger/careledger/pkg/cli/config"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestFirestoreFallsBackToMemory(t *testing.T) {
	var f config.Firestore
	gt.False(t, f.IsConfigured())

	repo, err := f.Configure(context.Background())
	gt.NoError(t, err).Required()
	defer repo.Close()

	id, err := repo.GetNextInvoiceID(context.Background())
	gt.NoError(t, err)
	gt.Equal(t, types.InvoiceID(1), id)
}

func TestLoggerConfigure(t *testing.T) {
	l := config.Logger{Level: "debug", Format: "json"}
	logger, err := l.Configure()
	gt.NoError(t, err)
	gt.V(t, logger).NotNil()

	l.Format = "yaml"
	_, err = l.Configure()
	gt.Error(t, err)
}

func TestBackendConfigure(t *testing.T) {
	b := config.Backend{URL: "http://localhost:8080", Principal: "alice", Timeout: time.Second}
	c, err := b.Configure()
	gt.NoError(t, err)
	gt.V(t, c).NotNil()

	b.URL = "localhost"
	_, err = b.Configure()
	gt.Error(t, err)
}
