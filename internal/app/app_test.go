package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prank_names/internal/config"
	"prank_names/internal/extract"
	"prank_names/internal/fetch"
	"prank_names/internal/models"
	"prank_names/internal/namegen"
)

const wikiPage = `<html><head><title>Bart's prank calls</title></head><body>
<table>
  <tr><th>Episode</th><th>Name</th></tr>
  <tr><td colspan="2">Season 1</td></tr>
  <tr><td>7G04</td><td>Hugh Jass</td></tr>
</table>
<table>
  <tr><th>Episode</th><th>Name</th></tr>
  <tr><td colspan="2">Season 2</td></tr>
  <tr><td>7F08</td><td>Hugh Jass</td></tr>
</table>
</body></html>`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T, handler http.Handler) *NamesApp {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.Fetch.URL = srv.URL + "/wiki/Bart%27s_prank_calls"

	a, err := NewNamesApp(cfg, quietLogger())
	require.NoError(t, err)
	return a
}

func singleNameGen(t *testing.T) *namegen.Generator {
	t.Helper()
	gen, err := namegen.New(models.NameLists{First: []string{"Bart"}, Last: []string{"Simpson"}}, nil)
	require.NoError(t, err)
	return gen
}

func TestLoop(t *testing.T) {
	tests := []struct {
		name  string
		input string
		names int
	}{
		{"quit immediately", "q\n", 0},
		{"upper case quit", "Q\n", 0},
		{"quit with spaces", "   q  \n", 0},
		{"enter then quit", "\n\nq\n", 2},
		{"other input generates", "hello\nquit\nq\n", 2},
		{"eof ends loop", "\n\n\n", 3},
		{"eof without newline", "", 0},
		{"stops at first quit", "\nq\n\n\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, Loop(singleNameGen(t), strings.NewReader(tt.input), &out))

			got := out.String()
			assert.True(t, strings.HasPrefix(got, Banner))
			assert.Equal(t, 1, strings.Count(got, Banner))
			assert.Equal(t, tt.names, strings.Count(got, "Bart Simpson\n"))
		})
	}
}

func TestLoop_PromptsBeforeEachRead(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Loop(singleNameGen(t), strings.NewReader("\n\nq\n"), &out))

	assert.Equal(t, Banner+Prompt+"Bart Simpson\n"+Prompt+"Bart Simpson\n"+Prompt, out.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestLoop_ReadError(t *testing.T) {
	err := Loop(singleNameGen(t), failingReader{}, io.Discard)
	require.EqualError(t, err, "tty gone")
}

func TestRun_EndToEnd(t *testing.T) {
	a := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wiki/Bart's_prank_calls", r.URL.Path)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, wikiPage)
	}))

	var out bytes.Buffer
	require.NoError(t, a.Run(context.Background(), strings.NewReader("\n\nQ\n"), &out))
	assert.Equal(t, 2, strings.Count(out.String(), "Hugh Jass\n"))
}

func TestRun_FetchFailure(t *testing.T) {
	a := newTestApp(t, http.NotFoundHandler())

	var out bytes.Buffer
	err := a.Run(context.Background(), strings.NewReader("\n"), &out)
	require.ErrorIs(t, err, fetch.ErrHTTPStatus)
	assert.Empty(t, out.String())
}

func TestRun_ExtractFailure(t *testing.T) {
	a := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><p>no tables</p></body></html>")
	}))

	var out bytes.Buffer
	err := a.Run(context.Background(), strings.NewReader("\n"), &out)
	require.ErrorIs(t, err, extract.ErrMissingTables)
	assert.Empty(t, out.String())
}

func TestRun_NoNames(t *testing.T) {
	a := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<table><tr><th>a</th><th>b</th></tr></table><table><tr><th>a</th><th>b</th></tr></table>")
	}))

	_, err := a.LoadNames(context.Background())
	require.ErrorIs(t, err, extract.ErrNoNamesFound)
}

func TestNewNamesApp_CollyBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, wikiPage)
	}))
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.Fetch.URL = srv.URL
	cfg.Fetch.Backend = config.BackendColly

	a, err := NewNamesApp(cfg, quietLogger())
	require.NoError(t, err)

	names, err := a.LoadNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Hugh", "Hugh"}, names.First)
}
