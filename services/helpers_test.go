package services

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var appErr *AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, status, appErr.Status, appErr.Message)
}

func upload(name, contentType, body string) *Upload {
	return &Upload{
		Filename:    name,
		ContentType: contentType,
		Size:        int64(len(body)),
		Reader:      strings.NewReader(body),
	}
}

func ptr[T any](v T) *T { return &v }
