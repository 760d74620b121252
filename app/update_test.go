package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestRelease(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/releases/tag/v1.4.0", http.StatusFound)
	})
	mux.HandleFunc("/releases/tag/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/moved/latest", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	})
	mux.HandleFunc("/login", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/limited/latest", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	testCases := []struct {
		name    string
		path    string
		want    string
		wantErr string
	}{
		{name: "redirect to tag", path: "/releases/latest", want: "1.4.0"},
		{name: "not a release page", path: "/moved/latest", wantErr: "no release tag"},
		{name: "error status", path: "/limited/latest", wantErr: "429"},
		{name: "missing", path: "/nothing/latest", wantErr: "404"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := latestRelease(context.Background(), srv.Client(), srv.URL+tc.path)
			if tc.wantErr != "" {
				require.ErrorIs(t, err, errUpdateCheck)
				assert.Contains(t, err.Error(), tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHelpListsEnvironment(t *testing.T) {
	text := helpText()

	for _, name := range []string{
		"MUSHAF_NO_COLOR, NO_COLOR",
		"MUSHAF_ENV",
		"MUSHAF_UPDATE_NOTIFIER",
		"VISUAL, EDITOR",
	} {
		assert.Contains(t, text, name)
	}

	assert.Contains(t, text, "{{range .VisibleCommands}}")
}
