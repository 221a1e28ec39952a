package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingPage = `<html><body>
<nav>Jobs Home About</nav>
<div class="job-description">
We are hiring a backend engineer. You will build services in Python and Go,
deploy with Docker and Kubernetes, and own our Postgres schemas. At least
three years of production experience expected.
</div>
<footer>© Example Corp</footer>
</body></html>`

func TestIngestPosting(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(postingPage))
	}))
	defer ts.Close()

	s := newTestServer(t)

	var resp ingestResponse
	rec := doJSON(t, s, http.MethodPost, "/ingest/posting", ingestRequest{URL: ts.URL}, &resp)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ts.URL, resp.URL)
	assert.Contains(t, resp.Text, "backend engineer")
	assert.NotContains(t, resp.Text, "Jobs Home About")
	assert.Contains(t, resp.SuggestedSkills, "python")
	assert.Contains(t, resp.SuggestedSkills, "docker")
	assert.Contains(t, resp.SuggestedSkills, "kubernetes")
}

func TestIngestPosting_MissingURL(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/ingest/posting", ingestRequest{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngestPosting_FetchFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/ingest/posting", ingestRequest{URL: ts.URL}, nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
