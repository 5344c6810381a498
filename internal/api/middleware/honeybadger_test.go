package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	honeybadger "github.com/honeybadger-io/honeybadger-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu      sync.Mutex
	notices []string
	tags    []honeybadger.Tags
}

func (r *recordingNotifier) Notify(err interface{}, extra ...interface{}) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, err.(string))
	for _, e := range extra {
		if t, ok := e.(honeybadger.Tags); ok {
			r.tags = append(r.tags, t)
		}
	}
	return "id", nil
}

func quietLog() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestHoneybadgerMiddleware_DisabledWithoutKey(t *testing.T) {
	r := gin.New()
	r.Use(HoneybadgerMiddleware(HoneybadgerConfig{}, quietLog()))
	r.GET("/universities", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/universities", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNotifyingMiddleware_StatusCodes(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		notified bool
		tag      string
	}{
		{"ok", http.StatusOK, false, ""},
		{"not found", http.StatusNotFound, false, ""},
		{"internal", http.StatusInternalServerError, true, "5XX"},
		{"unavailable", http.StatusServiceUnavailable, true, "unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &recordingNotifier{}
			r := gin.New()
			r.Use(notifyingMiddleware(n, quietLog()))
			r.GET("/universities", func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/universities", nil))

			assert.Equal(t, tt.status, w.Code)
			if !tt.notified {
				assert.Empty(t, n.notices)
				return
			}
			require.Len(t, n.notices, 1)
			assert.Contains(t, n.notices[0], "GET /universities")
			require.Len(t, n.tags, 1)
			assert.Equal(t, tt.tag, n.tags[0][0])
		})
	}
}

func TestNotifyingMiddleware_IncludesHandlerErrors(t *testing.T) {
	n := &recordingNotifier{}
	r := gin.New()
	r.Use(notifyingMiddleware(n, quietLog()))
	r.GET("/universities", func(c *gin.Context) {
		_ = c.Error(io.ErrUnexpectedEOF)
		c.Status(http.StatusInternalServerError)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/universities", nil))

	require.Len(t, n.notices, 1)
	assert.Contains(t, n.notices[0], "unexpected EOF")
}

func TestNotifyingMiddleware_PanicIsReportedAndRecovered(t *testing.T) {
	n := &recordingNotifier{}
	r := gin.New()
	r.Use(gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, _ any) {
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	r.Use(notifyingMiddleware(n, quietLog()))
	r.GET("/universities", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/universities", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotEmpty(t, n.notices)
	assert.Contains(t, n.notices[0], "Panic: GET /universities")
}
