package server

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/ideae/internal/server/config"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())
	return addr
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDSN = repomanager.MemoryDSN
	c.EndpointAddrHTTP = freeAddr(t)
	c.EndpointAddrGRPC = freeAddr(t)
	return c
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logOutput
	logOutput = &buf
	t.Cleanup(func() { logOutput = prev })
	return &buf
}

func TestNewApp_WarnsWithoutLLMKey(t *testing.T) {
	logs := captureLogs(t)

	app, err := NewApp(context.Background(), testConfig(t))
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Contains(t, logs.String(), "LLM API key is not set")
}

func TestNewApp_Errors(t *testing.T) {
	captureLogs(t)

	c := testConfig(t)
	c.LogLevel = "loud"
	_, err := NewApp(context.Background(), c)
	assert.ErrorContains(t, err, "logger init error")

	c = testConfig(t)
	c.BlockListPath = filepath.Join(t.TempDir(), "missing.txt")
	_, err = NewApp(context.Background(), c)
	assert.ErrorContains(t, err, "block list error")

	c = testConfig(t)
	c.DatabaseDSN = "mysql://nope"
	_, err = NewApp(context.Background(), c)
	assert.ErrorContains(t, err, "db init error")
}

func TestNewApp_CustomBlockList(t *testing.T) {
	logs := captureLogs(t)

	path := filepath.Join(t.TempDir(), "terms.txt")
	require.NoError(t, os.WriteFile(path, []byte("# custom\nfoo\nbar\n"), 0o600))

	c := testConfig(t)
	c.BlockListPath = path
	c.LLMAPIKey = "sk-test"
	_, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"block_list_terms":2`)
	assert.NotContains(t, logs.String(), "LLM API key is not set")
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	captureLogs(t)

	app, err := NewApp(context.Background(), testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(150 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop within timeout after context cancel")
	}
}

func TestApp_RunFailsOnBadAddress(t *testing.T) {
	captureLogs(t)

	c := testConfig(t)
	c.EndpointAddrGRPC = "127.0.0.1:99999"
	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)

	select {
	case err := <-runAsync(app):
		assert.ErrorContains(t, err, "grpc server")
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop after server failure")
	}
}

func runAsync(app *App) <-chan error {
	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()
	return done
}
