// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/lendit/internal/config"
	"github.com/MKhiriev/lendit/internal/handler"
	myHTTP "github.com/MKhiriev/lendit/internal/handler/http"
	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestHandlers(cfg config.Server) *handler.Handlers {
	return &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, cfg, logger.Nop())}
}

func TestNewServer_RequiresHTTP(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: ":8000"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8000"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(newTestHandlers(config.Server{}), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServesUntilContextDone(t *testing.T) {
	cfg := config.Server{HTTPAddress: freeAddress(t)}
	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.(*server).run(ctx)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddress + "/")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + cfg.HTTPAddress + "/")
	assert.Error(t, err, "listener must be closed after shutdown")
}

func TestServer_ReturnsWhenListenFails(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	srv, err := NewServer(newTestHandlers(cfg), cfg, logger.Nop())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.(*server).run(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after the listener failed")
	}
}
