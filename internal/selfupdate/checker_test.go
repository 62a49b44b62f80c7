package selfupdate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/ignaciourbina/quizview/releases/latest" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `{"tag_name":%q}`, tag)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		latest    string
		available bool
	}{
		{"newer release", "v1.0.0", "v1.1.0", true},
		{"same release", "v1.1.0", "v1.1.0", false},
		{"older release", "v2.0.0", "v1.9.0", false},
		{"tag without v prefix", "1.0.0", "1.0.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := releaseServer(t, tt.latest)
			c := NewChecker(WithAPIBase(srv.URL))

			res, err := c.Check(context.Background(), tt.current)
			require.NoError(t, err)
			assert.Equal(t, tt.available, res.UpdateAvailable)
			assert.Equal(t, tt.latest, res.LatestVersion)
		})
	}
}

func TestCheck_DevBuild(t *testing.T) {
	c := NewChecker()
	_, err := c.Check(context.Background(), "(devel)")
	assert.True(t, errors.Is(err, ErrDevBuild))
}

func TestCheck_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewChecker(WithAPIBase(srv.URL))
	_, err := c.Check(context.Background(), "v1.0.0")
	require.Error(t, err)
}
