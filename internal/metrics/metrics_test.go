package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	r := New()

	r.GameStarted()
	r.GameStarted()
	r.LinesCleared(3)
	r.LinesCleared(0)
	r.LinesCleared(-2)
	r.GameOver(1200)
	r.SessionOpened()
	r.SessionOpened()
	r.SessionClosed()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.gamesStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.gamesOver))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.linesCleared))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.sessions))

	n, err := testutil.GatherAndCount(r.Registry())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.GameStarted()
		r.GameOver(10)
		r.LinesCleared(4)
		r.SessionOpened()
		r.SessionClosed()
	})
	assert.Nil(t, r.Registry())

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := New()
	r.GameOver(500)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "tetris_games_over_total 1"), body)
	assert.Contains(t, body, "tetris_final_score_count 1")
}
