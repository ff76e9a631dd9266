package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", fmt.Errorf("user.FindByID: %w", ErrNotFound), http.StatusNotFound},
		{"constraint", fmt.Errorf("user.Create: %w", ErrConstraintViolation), http.StatusConflict},
		{"invalid input", fmt.Errorf("%w: step out of range", ErrInvalidInput), http.StatusBadRequest},
		{"connectivity", fmt.Errorf("edu.Upsert: %w", ErrConnectivity), http.StatusServiceUnavailable},
		{"id taken", fmt.Errorf("%w: %w", ErrUserIDTaken, ErrConstraintViolation), http.StatusConflict},
		{"credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleError(c, tt.err)

			assert.Equal(t, tt.code, w.Code)
			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}

func TestParseIDParam(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "chapterId", Value: "12"}}

	id, ok := ParseIDParam(c, "chapterId")
	assert.True(t, ok)
	assert.Equal(t, uint(12), id)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "chapterId", Value: "abc"}}

	id, ok = ParseIDParam(c, "chapterId")
	assert.False(t, ok)
	assert.Equal(t, uint(0), id)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
