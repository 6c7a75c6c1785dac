package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonathan/profile-matcher/internal/extraction"
	"github.com/jonathan/profile-matcher/internal/taxonomy"
	"github.com/jonathan/profile-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIngestor(t *testing.T) *Ingestor {
	t.Helper()
	return New(extraction.New(taxonomy.Default()), nil, false)
}

const postingHTML = `<!DOCTYPE html>
<html>
<head><title>Acme Careers</title></head>
<body>
<nav>Home | Jobs</nav>
<h1>Senior Backend Engineer</h1>
<div class="job-description">
<p>We need 5+ years of backend experience.</p>
<p>You will work with Python and Kubernetes every day. Experience with PostgreSQL is required.</p>
</div>
<footer>© Acme</footer>
</body>
</html>`

func TestJobFromURL_ParsesPosting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(postingHTML))
	}))
	defer server.Close()

	job, err := newTestIngestor(t).JobFromURL(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, server.URL, job.ID)
	assert.Equal(t, "Senior Backend Engineer", job.Title)
	assert.Equal(t, types.LevelSenior, job.ExperienceLevel)
	assert.Equal(t, 5.0, job.RequiredExperienceYears)
	assert.Contains(t, job.RequiredSkills, "Python")
	assert.Contains(t, job.RequiredSkills, "Kubernetes")
	assert.NotContains(t, job.Description, "Home | Jobs") // nav stripped
}

func TestJobFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestIngestor(t).JobFromURL(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestJobFromURL_InvalidURL(t *testing.T) {
	_, err := newTestIngestor(t).JobFromURL(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestRequiredYears(t *testing.T) {
	assert.Equal(t, 5.0, requiredYears("at least 5+ years of experience"))
	assert.Equal(t, 3.0, requiredYears("3 years with Go"))
	assert.Equal(t, 0.0, requiredYears("no stated requirement"))
}

func TestLevelFromTitle(t *testing.T) {
	assert.Equal(t, types.LevelSenior, levelFromTitle("Senior Data Engineer"))
	assert.Equal(t, types.LevelPrincipal, levelFromTitle("Staff Engineer"))
	assert.Equal(t, types.LevelAssociate, levelFromTitle("Junior Developer"))
	assert.Equal(t, types.LevelEntry, levelFromTitle("Graduate Software Engineer"))
	assert.Equal(t, types.ExperienceLevel(""), levelFromTitle("Software Engineer"))
}

func TestExtractJobText_FallsBackToBody(t *testing.T) {
	text, title, err := extractJobText(`<html><head><title>T</title></head><body><p>plain body text</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "T", title)
	assert.Equal(t, "plain body text", text)
}
