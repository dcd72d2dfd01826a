package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/treeprinter/pkg/buildinfo"
	treeio "github.com/matzehuels/treeprinter/pkg/io"
	"github.com/matzehuels/treeprinter/pkg/observability"
	"github.com/matzehuels/treeprinter/pkg/tree"
	"github.com/matzehuels/treeprinter/pkg/treeprint"
)

func newTestServer() http.Handler {
	return newServer(log.New(io.Discard), treeprint.DefaultOptions())
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeJSON, rec.Header().Get("Content-Type"))

	var body struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, buildinfo.Version, body.Version)
}

func TestRequestID(t *testing.T) {
	h := newTestServer()

	rec := do(t, h, http.MethodGet, "/healthz", "")
	_, err := uuid.Parse(rec.Header().Get(headerRequestID))
	assert.NoError(t, err, "server should assign a UUID")

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(headerRequestID, id)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(headerRequestID), "a valid client id is kept")

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(headerRequestID, "not a uuid")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "not a uuid", rec.Header().Get(headerRequestID))
}

func TestRenderEndpoint(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "defaults",
			body: `{"tree": ` + threeNodes + `}`,
			want: "  A  \n ╱ ╲ \nB   C\n",
		},
		{
			name: "options",
			body: `{"tree": ` + threeNodes + `, "options": {"square_branches": true, "label_gap": 1}}`,
			want: " A \n┌┴┐\nB C\n",
		},
		{
			name: "glyph set",
			body: `{"tree": ` + threeNodes + `, "options": {"square_branches": true, "label_gap": 5}, "glyph_set": "ascii"}`,
			want: "   A   \n.--'--.\nB     C\n",
		},
		{
			name: "page",
			body: `{"tree": [{"label": "a"}, {"label": "b"}], "width": 10}`,
			want: "a b\n\n",
		},
		{
			name: "narrow page",
			body: `{"tree": [{"label": "a"}, {"label": "b"}], "width": 3, "options": {"row_gap": 0}}`,
			want: "a\nb\n",
		},
		{
			name: "null tree",
			body: `{"tree": null}`,
			want: "",
		},
	}

	h := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/render", tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, contentTypeText, rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestRenderEndpointUsesServerDefaults(t *testing.T) {
	defaults := treeprint.DefaultOptions()
	defaults.SquareBranches = true
	defaults.LabelGap = 1
	h := newServer(log.New(io.Discard), defaults)

	rec := do(t, h, http.MethodPost, "/render", `{"tree": `+threeNodes+`}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, " A \n┌┴┐\nB C\n", rec.Body.String())
}

func TestRenderEndpointErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"not json", `tree`, "INVALID_INPUT"},
		{"unknown field", `{"tree": {"label": "a"}, "colour": true}`, "INVALID_INPUT"},
		{"missing tree", `{}`, "INVALID_INPUT"},
		{"bad node", `{"tree": {"label": "a", "lef": {}}}`, "INVALID_INPUT"},
		{"negative gap", `{"tree": {"label": "a"}, "options": {"label_gap": -1}}`, "INVALID_INPUT"},
		{"zero width", `{"tree": [{"label": "a"}], "width": 0}`, "INVALID_INPUT"},
		{"unknown glyph set", `{"tree": {"label": "a"}, "glyph_set": "fancy"}`, "INVALID_GLYPHS"},
	}

	h := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/render", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, contentTypeJSON, rec.Header().Get("Content-Type"))

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, rec.Header().Get(headerRequestID), body.RequestID)
		})
	}
}

func TestRenderEndpointRejectsLargeDrawings(t *testing.T) {
	var complete bytes.Buffer
	require.NoError(t, treeio.WriteJSON([]*tree.Node{tree.Complete(maxResponseNodes + 1)}, &complete))

	// A left chain grows two rows and two columns per node in diagonal style.
	chain := strings.Repeat(`{"label": "x", "left": `, 1999) + `{"label": "x"}` + strings.Repeat("}", 1999)

	tests := []struct {
		name string
		tree string
		msg  string
	}{
		{"too many nodes", complete.String(), "nodes"},
		{"too many cells", chain, "cells"},
		{"too many cells in a page", "[" + chain + "]", "cells"},
	}

	h := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/render", `{"tree": `+tt.tree+`}`)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "INVALID_INPUT", body.Code)
			assert.Contains(t, body.Error, tt.msg)
		})
	}
}

func TestRenderEndpointCache(t *testing.T) {
	h := newTestServer()
	body := `{"tree": ` + threeNodes + `, "options": {"square_branches": true, "label_gap": 1}}`

	first := do(t, h, http.MethodPost, "/render", body)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "miss", first.Header().Get(headerCache))

	second := do(t, h, http.MethodPost, "/render", strings.ReplaceAll(body, " ", ""))
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "hit", second.Header().Get(headerCache), "whitespace does not change the key")
	assert.Equal(t, first.Body.String(), second.Body.String())

	other := do(t, h, http.MethodPost, "/render", body[:len(body)-1]+`, "glyph_set": "double"}`)
	require.Equal(t, http.StatusOK, other.Code)
	assert.Equal(t, "miss", other.Header().Get(headerCache))
	assert.Equal(t, " A \n╔╩╗\nB C\n", other.Body.String())
}

func TestRenderEndpointMethod(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/render", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

type recordingHTTPHooks struct {
	mu        sync.Mutex
	requests  []string
	responses []int
}

func (h *recordingHTTPHooks) OnRequest(_ context.Context, method, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, method+" "+path)
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.responses = append(h.responses, status)
}

func TestServerReportsToHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	h := newTestServer()
	do(t, h, http.MethodGet, "/healthz", "")
	do(t, h, http.MethodPost, "/render", `{}`)

	assert.Equal(t, []string{"GET /healthz", "POST /render"}, hooks.requests)
	assert.Equal(t, []int{http.StatusOK, http.StatusBadRequest}, hooks.responses)
}
