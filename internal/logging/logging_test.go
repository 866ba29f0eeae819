package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging(ServiceName)
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestGetLogData_MissingIsNilAndSafe(t *testing.T) {
	logData := GetLogData(context.Background())
	assert.Nil(t, logData)
	assert.NotPanics(t, func() {
		logData.AddTiming("xMs")()
		logData.AddData("k", 1)
	})
}

func TestSetupLogging_TagsService(t *testing.T) {
	logger, buf := bufferedLogger()

	logger.Info("started")
	assert.Equal(t, ServiceName, lastEntry(t, buf)["service"])

	logger.WithField("service", "migrations").Info("started")
	assert.Equal(t, "migrations", lastEntry(t, buf)["service"])
}

func TestSetupLogging_DebugHiddenAtInfo(t *testing.T) {
	logger, buf := bufferedLogger()

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.SetLevel(logrus.DebugLevel)
	logger.Debug("shown")
	assert.Equal(t, "debug", lastEntry(t, buf)["loglevel"])
}

func TestLogData_RoundTripsThroughContext(t *testing.T) {
	logger, _ := bufferedLogger()
	logData := NewLogData(logger)

	assert.Same(t, logData, GetLogData(WithLogData(context.Background(), logData)))
}

func TestLogData_LogIncludesDataAndTimings(t *testing.T) {
	logger, buf := bufferedLogger()
	logData := NewLogData(logger)
	logData.AddData("operationCount", 3)
	logData.AddTiming("listMs")()

	logData.Log().Info("done")

	entry := lastEntry(t, buf)
	assert.Equal(t, "info", entry["loglevel"])
	assert.EqualValues(t, 3, entry["operationCount"])
	assert.Contains(t, entry, "listMs")
}

func TestLoggingWrapper_LogsErrors(t *testing.T) {
	logger, buf := bufferedLogger()
	handler := LoggingWrapper("Test", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		assert.Same(t, logData, GetLogData(req.Context()))
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("bad")
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/status", nil))

	entry := lastEntry(t, buf)
	assert.Equal(t, "Handler.Test.Error", entry["msg"])
	assert.Equal(t, "error", entry["loglevel"])
}

type pingOutput struct {
	Body struct {
		OK bool `json:"ok"`
	}
}

func TestHumaMiddleware_AttachesLogData(t *testing.T) {
	logger, buf := bufferedLogger()
	_, api := humatest.New(t)
	api.UseMiddleware(HumaMiddleware(logger))

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		GetLogData(ctx).AddData("seen", true)
		out := &pingOutput{}
		out.Body.OK = true
		return out, nil
	})

	resp := api.Get("/ping")
	assert.Equal(t, http.StatusOK, resp.Code)

	entry := lastEntry(t, buf)
	assert.Equal(t, "Handler.ping.Complete", entry["msg"])
	assert.Equal(t, true, entry["seen"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
}
