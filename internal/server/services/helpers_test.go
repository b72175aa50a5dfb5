package services

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/ideae/internal/logging"
	"github.com/dmitrijs2005/ideae/internal/server/repositories/memory"
	"github.com/stretchr/testify/require"
)

// fakeGenerator records calls and returns a fixed answer or error.
type fakeGenerator struct {
	mu    sync.Mutex
	out   string
	err   error
	calls []generateCall
}

type generateCall struct {
	instruction, prompt, correlationID string
}

func (g *fakeGenerator) Generate(ctx context.Context, instruction, prompt, correlationID string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, generateCall{instruction, prompt, correlationID})
	if g.err != nil {
		return "", g.err
	}
	return g.out, nil
}

func (g *fakeGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

// stepClock makes timeNow advance by one second per call.
func stepClock(t *testing.T) {
	t.Helper()
	orig := timeNow
	t.Cleanup(func() { timeNow = orig })

	var mu sync.Mutex
	cur := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	timeNow = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		cur = cur.Add(time.Second)
		return cur
	}
}

// frozenClock pins timeNow to one instant.
func frozenClock(t *testing.T, at time.Time) {
	t.Helper()
	orig := timeNow
	t.Cleanup(func() { timeNow = orig })
	timeNow = func() time.Time { return at }
}

// fastHashing swaps the password hasher for a cheap reversible stand-in.
func fastHashing(t *testing.T) {
	t.Helper()
	origHash, origVerify := hashPassword, verifyPassword
	t.Cleanup(func() { hashPassword, verifyPassword = origHash, origVerify })

	hashPassword = func(pw string) (string, error) { return "plain$" + pw, nil }
	verifyPassword = func(pw, encoded string) (bool, error) { return encoded == "plain$"+pw, nil }
}

func bufferLogger(t *testing.T) (logging.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l, err := logging.NewJSONLogger(&buf, "debug")
	require.NoError(t, err)
	return l, &buf
}

func newStore() *memory.Store { return memory.NewStore() }
