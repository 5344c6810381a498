package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	honeybadger "github.com/honeybadger-io/honeybadger-go"
	"github.com/sirupsen/logrus"
)

// HoneybadgerConfig enables error reporting when APIKey is set.
type HoneybadgerConfig struct {
	APIKey string
	Env    string
}

// Notifier is the part of the honeybadger client the middleware needs.
type Notifier interface {
	Notify(err interface{}, extra ...interface{}) (string, error)
}

// HoneybadgerMiddleware reports panics and 5xx responses; 503 is tagged
// "unavailable". A panic is re-raised for gin.Recovery.
func HoneybadgerMiddleware(cfg HoneybadgerConfig, log *logrus.Entry) gin.HandlerFunc {
	if cfg.APIKey == "" {
		log.Info("Honeybadger is not active. To enable error reporting, set the HONEYBADGER_API_KEY environment variable.")
		return func(c *gin.Context) { c.Next() }
	}

	honeybadger.Configure(honeybadger.Configuration{APIKey: cfg.APIKey, Env: cfg.Env})
	log.Info("Honeybadger error reporting is enabled.")
	return notifyingMiddleware(honeybadger.DefaultClient, log)
}

func notifyingMiddleware(n Notifier, log *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				_, _ = n.Notify(fmt.Sprintf("Panic: %s %s", c.Request.Method, c.Request.URL.Path),
					c.Request, honeybadger.Context{"stack": string(debug.Stack())}, honeybadger.Tags{"panic", "http"})
				log.Error("Recovered from panic, notified Honeybadger: ", rec)
				panic(rec)
			}
		}()

		c.Next()

		status := c.Writer.Status()
		if status < 500 {
			return
		}
		tags := honeybadger.Tags{"5XX", "http"}
		if status == 503 {
			tags = honeybadger.Tags{"unavailable", "http"}
		}
		if errMsg := c.Errors.ByType(gin.ErrorTypePrivate).String(); errMsg != "" {
			_, _ = n.Notify(fmt.Sprintf("HTTP %d: %s %s: %s", status, c.Request.Method, c.Request.URL.Path, errMsg), c.Request, tags)
		} else {
			_, _ = n.Notify(fmt.Sprintf("HTTP %d: %s %s", status, c.Request.Method, c.Request.URL.Path), c.Request, tags)
		}
		log.Warnf("Honeybadger reported HTTP %d for %s %s", status, c.Request.Method, c.Request.URL.Path)
	}
}
