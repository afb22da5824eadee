package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"portfolio-api/cmd/api/services"
)

func runWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondServiceError(c, err)
	return w
}

func TestRespondServiceErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", services.ErrInvalidInput, http.StatusBadRequest},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"user not found", services.ErrUserNotFound, http.StatusNotFound},
		{"email taken", services.ErrEmailTaken, http.StatusConflict},
		{"phone taken", services.ErrPhoneTaken, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := runWithError(t, tc.err)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRespondServiceErrorWrapped(t *testing.T) {
	// services wrap sentinels with context, the mapping must still hit
	w := runWithError(t, errors.New("outer: "+services.ErrInvalidInput.Error()))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	wrapped := errors.Join(errors.New("bad date"), services.ErrInvalidInput)
	w = runWithError(t, wrapped)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequireUserIDMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	_, ok := requireUserID(c)

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireUserIDPresent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", "64f0c2b9e1a4d3f8a7b61234")

	userID, ok := requireUserID(c)

	assert.True(t, ok)
	assert.Equal(t, "64f0c2b9e1a4d3f8a7b61234", userID)
}
