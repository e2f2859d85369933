package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextReader(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := &contextReader{ctx: ctx, r: strings.NewReader("abcdef")}

	buf := make([]byte, 3)
	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(buf[:n]))

	cancel()
	_, err = r.Read(buf)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestGridFSStore needs a MongoDB server; set MONGO_TEST_URI to run it.
func TestGridFSStore(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx := context.Background()

	var s Store
	gs, err := NewGridFSStore(ctx, uri, "eduportal_test", fmt.Sprintf("blobs_%d", time.Now().UnixNano()))
	require.NoError(t, err)
	t.Cleanup(func() { gs.Close(context.Background()) })
	s = gs

	n, err := s.Put(ctx, "cover.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)

	rc, err := s.Get(ctx, "cover.png")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "png-bytes", string(body))

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Put(canceled, "late.png", strings.NewReader("late"))
	assert.ErrorIs(t, err, context.Canceled)

	require.NoError(t, s.Delete(ctx, "cover.png"))
	_, err = s.Get(ctx, "cover.png")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "cover.png"), ErrNotFound)
}
