package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_ImplicitOKOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("body"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
}

func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusBadRequest)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusBadRequest, w.status)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResponseWriter_AccumulatesSizeAcrossWrites(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("abc"))
	w.Write([]byte("defg"))

	assert.Equal(t, 7, w.size)
}
