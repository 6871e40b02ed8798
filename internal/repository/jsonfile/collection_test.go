package jsonfile

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/marketmanager-server/internal/mocks"
	"github.com/dtroode/marketmanager-server/internal/model"
)

func TestCollection_StorageFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("download error is wrapped", func(t *testing.T) {
		t.Parallel()

		storage := mocks.NewStorage(t)
		storage.On("Download", mock.Anything, LicensesObject).Return(nil, errors.New("disk unplugged")).Once()

		_, err := NewLicenseRepository(storage).List(ctx)
		require.ErrorContains(t, err, "failed to read licenses.json")
		assert.ErrorContains(t, err, "disk unplugged")
	})

	t.Run("corrupt document", func(t *testing.T) {
		t.Parallel()

		storage := mocks.NewStorage(t)
		storage.On("Download", mock.Anything, SessionsObject).
			Return(io.NopCloser(strings.NewReader("{not json")), nil).Once()

		_, err := NewSessionRepository(storage).GetByToken(ctx, "abc")
		assert.ErrorContains(t, err, "failed to decode sessions.json")
	})

	t.Run("upload error is returned", func(t *testing.T) {
		t.Parallel()

		storage := mocks.NewStorage(t)
		storage.On("Download", mock.Anything, UsersObject).
			Return(io.NopCloser(strings.NewReader("[]")), nil).Once()
		storage.On("Upload", mock.Anything, UsersObject, mock.Anything).Return(errors.New("read-only volume")).Once()

		err := NewUserRepository(storage).Create(ctx, model.User{ID: "u1", Username: "dana", Email: "dana@shop.example"})
		assert.ErrorContains(t, err, "read-only volume")
	})
}
