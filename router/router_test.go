// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/mouza-form/models"
	"github.com/danielhkuo/mouza-form/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	st, _ := testutil.SetupTestStore(t)
	mux := NewRouter(st, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestHealthEndpoint_Wrapped(t *testing.T) {
	st, _ := testutil.SetupTestStore(t)
	mux := NewRouter(st, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "health-check-1")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "health-check-1", w.Header().Get("X-Request-ID"))
}

func TestHealthEndpoint_StoreClosed(t *testing.T) {
	st, _ := testutil.SetupTestStore(t)
	mux := NewRouter(st, testutil.GetTestConfig())
	require.NoError(t, st.Close())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRootEndpoint(t *testing.T) {
	st, _ := testutil.SetupTestStore(t)
	mux := NewRouter(st, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mouza-form API v1", w.Body.String())
}

func TestRouteExistence(t *testing.T) {
	st, conn := testutil.SetupTestStore(t)
	mux := NewRouter(st, testutil.GetTestConfig())
	id := strconv.FormatInt(testutil.CreateTestLocation(t, conn, testutil.Entry("Jamgora", "RS", "12")), 10)

	testCases := []struct {
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"GET", "/health", nil, http.StatusOK},
		{"GET", "/", nil, http.StatusOK},
		{"POST", "/submit", testutil.SubmitBody(testutil.Mouza("Jamgora", "RS", "12")), http.StatusOK},
		{"GET", "/data", nil, http.StatusOK},
		{"GET", "/data/" + id, nil, http.StatusOK},
		{"DELETE", "/delete-mouza-info/" + id, nil, http.StatusOK},
		{"DELETE", "/data/" + id, nil, http.StatusOK},
		{"GET", "/nope", nil, http.StatusNotFound},
		{"PUT", "/data/" + id, nil, http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := testutil.MakeRequest(tc.method, tc.path, tc.body, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tc.want)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	st, _ := testutil.SetupTestStore(t)
	mux := NewRouter(st, testutil.GetTestConfig())

	req := httptest.NewRequest(http.MethodOptions, "/submit", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPIRoutesCarryRequestID(t *testing.T) {
	st, _ := testutil.SetupTestStore(t)
	mux := NewRouter(st, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/data", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var resp models.ListResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Empty(t, resp.Data)
}
