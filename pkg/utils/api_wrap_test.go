package utils

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

func TestHandleServiceError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: days must be between 1 and 7", ErrInvalidInput), http.StatusBadRequest},
		{ErrSessionNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: back from hero", ErrInvalidTransition), http.StatusConflict},
		{ErrSubmissionInProgress, http.StatusConflict},
		{ErrNoItinerary, http.StatusConflict},
		{ErrShareLinkExpired, http.StatusGone},
		{ErrInvalidShareLink, http.StatusBadRequest},
		{ErrDownloadNotImplemented, http.StatusNotImplemented},
		{fmt.Errorf("%w: connection refused", ErrDatabaseError), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, tc.err)

			assert.Equal(t, tc.code, w.Code)
			var resp APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tc.code, resp.Code)
			assert.Equal(t, "trace-1", resp.TraceID)
		})
	}
}

func TestHandleServiceError_DownloadNotice(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleServiceError(c, ErrDownloadNotImplemented)

	var resp struct {
		Data Notice `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, Notice{Title: "Coming Soon!", Description: "PDF download feature will be available soon."}, resp.Data)
}

func TestRespondSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondCreated(c, gin.H{"id": "abc"}, "created")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"status":"success","code":201,"message":"created","data":{"id":"abc"}}`, w.Body.String())
}
