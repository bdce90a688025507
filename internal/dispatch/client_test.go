package dispatch

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestClient() *Client {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewClient(log)
}

type sendResult struct {
	success bool
	message string
}

func waitResult(t *testing.T, results <-chan sendResult) sendResult {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for send result")
		return sendResult{}
	}
}

func TestSendJSONPostsBody(t *testing.T) {
	var gotMethod, gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte("accepted"))
	}))
	defer server.Close()

	results := make(chan sendResult, 1)
	newTestClient().SendJSON(server.URL, `{"code":"A"}`, nil, func(success bool, message string) {
		results <- sendResult{success, message}
	})

	r := waitResult(t, results)
	require.True(t, r.success)
	require.Equal(t, "accepted", r.message)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, `{"code":"A"}`, gotBody)
}

func TestSendJSONSetsExtraHeaders(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	defer server.Close()

	results := make(chan sendResult, 1)
	newTestClient().SendJSON(server.URL, "{}", map[string]string{"Authorization": "Bearer abc"}, func(success bool, message string) {
		results <- sendResult{success, message}
	})

	r := waitResult(t, results)
	require.True(t, r.success)
	require.Equal(t, "Bearer abc", gotAuth)
}

func TestSendJSONNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	results := make(chan sendResult, 1)
	newTestClient().SendJSON(server.URL, "{}", nil, func(success bool, message string) {
		results <- sendResult{success, message}
	})

	r := waitResult(t, results)
	require.False(t, r.success)
	require.Equal(t, "upstream down", r.message)
}

func TestSendJSONConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	results := make(chan sendResult, 1)
	newTestClient().SendJSON(server.URL, "{}", nil, func(success bool, message string) {
		results <- sendResult{success, message}
	})

	r := waitResult(t, results)
	require.False(t, r.success)
	require.NotEmpty(t, r.message)
}
