package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore(t *testing.T) {
	ctx := context.Background()
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	n, err := s.Put(ctx, "lesson.pdf", strings.NewReader("%PDF-1.4 body"))
	require.NoError(t, err)
	assert.Equal(t, int64(13), n)

	rc, err := s.Get(ctx, "lesson.pdf")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "%PDF-1.4 body", string(body))

	require.NoError(t, s.Delete(ctx, "lesson.pdf"))

	_, err = s.Get(ctx, "lesson.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "lesson.pdf"), ErrNotFound)
}

func TestDiskStoreRejectsTraversal(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "../etc/passwd", `a\b`} {
		_, err := s.Put(context.Background(), key, strings.NewReader("x"))
		assert.Error(t, err, key)
	}
}

func TestDiskStoreCanceledContext(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Put(ctx, "k", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
