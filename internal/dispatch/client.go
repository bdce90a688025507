package dispatch

import (
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// ResultFunc receives the outcome of an async send: success is true for any
// 2xx status, and message carries the response body on completion or the
// error text on failure.
type ResultFunc func(success bool, message string)

// Client posts JSON bodies to webhook endpoints. Sends are fire-and-forget
// goroutines with no timeout, retry or cancellation; the endpoint decides how
// long a delivery takes.
type Client struct {
	http *http.Client
	log  *logrus.Logger
}

// NewClient creates a webhook client.
func NewClient(log *logrus.Logger) *Client {
	return &Client{http: &http.Client{}, log: log}
}

// SendJSON posts body to url asynchronously. Content-Type is always
// application/json; extra headers are set on top and may override it. The
// callback runs on the sender goroutine once the attempt resolves.
func (c *Client) SendJSON(url, body string, headers map[string]string, onResult ResultFunc) {
	go func() {
		req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
		if err != nil {
			c.log.WithError(err).WithField("url", url).Warn("Failed to build webhook request")
			onResult(false, err.Error())
			return
		}
		req.Header.Set("Content-Type", "application/json")
		for key, value := range headers {
			req.Header.Set(key, value)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			c.log.WithError(err).WithField("url", url).Warn("Webhook delivery failed")
			onResult(false, err.Error())
			return
		}
		defer resp.Body.Close()

		respBody, _ := io.ReadAll(resp.Body)
		success := resp.StatusCode >= 200 && resp.StatusCode < 300
		if !success {
			c.log.WithFields(logrus.Fields{
				"url":    url,
				"status": resp.StatusCode,
			}).Warn("Webhook returned non-success status")
		}
		onResult(success, string(respBody))
	}()
}
