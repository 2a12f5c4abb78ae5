package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperr "github.com/leohylee/tes-companion/internal/errors"
)

func TestWrapKeepsCode(t *testing.T) {
	base := apperr.NotFoundf("campaign '%s' not found", "c-1").WithMeta("campaign_id", "c-1")

	wrapped := apperr.Wrap(base, "failed to load campaign")

	assert.True(t, apperr.IsNotFound(wrapped))
	assert.Equal(t, "c-1", apperr.GetMeta(wrapped)["campaign_id"])
	assert.Contains(t, wrapped.Error(), "failed to load campaign")
}

func TestWrapPlainErrorIsUnknown(t *testing.T) {
	wrapped := apperr.Wrap(stderrors.New("boom"), "context")

	assert.Equal(t, apperr.CodeUnknown, apperr.GetCode(wrapped))
	assert.Nil(t, apperr.Wrap(nil, "ignored"))
}

func TestSyncFailed(t *testing.T) {
	err := apperr.SyncFailed(stderrors.New("connection refused"), "update campaign")

	assert.True(t, apperr.IsSyncFailed(err))
	assert.False(t, apperr.IsNotFound(err))
	assert.Equal(t, "update campaign failed to sync: connection refused", err.Error())
}
