package actions

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// captureStdout swaps os.Stdout for a pipe while fn runs
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	rd, wr, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = wr
	defer func() { os.Stdout = orig }()

	done := make(chan []byte)
	go func() {
		b, _ := io.ReadAll(rd)
		done <- b
	}()

	fn()

	require.NoError(t, wr.Close())
	return string(<-done)
}

func TestSpin_KeepsStdoutClean(t *testing.T) {
	var stderr syncBuffer
	r := &Runner{Interactive: true, Stderr: &stderr}

	called := false
	leaked := captureStdout(t, func() {
		err := r.spin(context.Background(), "Fetching your top tracks...", func(ctx context.Context) error {
			called = true
			time.Sleep(300 * time.Millisecond)
			return nil
		})
		require.NoError(t, err)
	})

	assert.True(t, called)
	assert.Empty(t, leaked)
	assert.Contains(t, stderr.String(), "Fetching your top tracks")
}

func TestSpin_NonInteractiveRunsDirectly(t *testing.T) {
	var stderr syncBuffer
	r := &Runner{Stderr: &stderr}

	err := r.spin(context.Background(), "Fetching...", func(ctx context.Context) error {
		return io.ErrUnexpectedEOF
	})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Empty(t, stderr.String())
}
