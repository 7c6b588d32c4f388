package replog_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oliverhees/reptally/internal/replog"
	"github.com/oliverhees/reptally/internal/telemetry/metrics"
)

func TestCatalogHandler_HandleList(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockcatalogService(ctrl)
	h := replog.NewCatalogHandler(serviceMock, metrics.NewTestManager())

	serviceMock.EXPECT().
		Exercises(gomock.Any()).
		Return([]string{"Push-ups", "Sit-ups", "Squats", "Pull-ups"}).
		Times(1)

	req, err := http.NewRequest("GET", "/catalog", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()

	h.HandleList(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var catalogResp replog.CatalogResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&catalogResp))
	assert.Equal(t, []string{"Push-ups", "Sit-ups", "Squats", "Pull-ups"}, catalogResp.Exercises)
}

func TestCatalogHandler_HandleAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockcatalogService(ctrl)
	h := replog.NewCatalogHandler(serviceMock, metrics.NewTestManager())

	gomock.InOrder(
		serviceMock.EXPECT().
			AddExercise(gomock.Any(), "Burpees").
			Return(nil),
		serviceMock.EXPECT().
			Exercises(gomock.Any()).
			Return([]string{"Push-ups", "Sit-ups", "Squats", "Pull-ups", "Burpees"}),
	)

	reqJson, err := json.Marshal(replog.AddExerciseRequest{Name: "Burpees"})
	require.NoError(t, err)

	req, err := http.NewRequest("POST", "/catalog", bytes.NewReader(reqJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.HandleAdd(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var catalogResp replog.CatalogResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&catalogResp))
	assert.Contains(t, catalogResp.Exercises, "Burpees")
}

func TestCatalogHandler_HandleAdd_rejected(t *testing.T) {
	testCases := []struct {
		name       string
		reqName    string
		serviceErr error
	}{
		{
			name:       "Duplicate",
			reqName:    "Push-ups",
			serviceErr: replog.ErrDuplicateExercise,
		},
		{
			name:       "EmptyName",
			reqName:    "",
			serviceErr: replog.ErrEmptyExerciseName,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			serviceMock := NewMockcatalogService(ctrl)
			h := replog.NewCatalogHandler(serviceMock, metrics.NewTestManager())

			serviceMock.EXPECT().
				AddExercise(gomock.Any(), tc.reqName).
				Return(tc.serviceErr).
				Times(1)

			reqJson, err := json.Marshal(replog.AddExerciseRequest{Name: tc.reqName})
			require.NoError(t, err)

			req, err := http.NewRequest("POST", "/catalog", bytes.NewReader(reqJson))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			h.HandleAdd(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCatalogHandler_HandleAdd_invalidContentType(t *testing.T) {
	ctrl := gomock.NewController(t)
	serviceMock := NewMockcatalogService(ctrl)
	h := replog.NewCatalogHandler(serviceMock, metrics.NewTestManager())

	req, err := http.NewRequest("POST", "/catalog", bytes.NewReader([]byte("name=Burpees")))
	require.NoError(t, err)
	rec := httptest.NewRecorder()

	h.HandleAdd(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
