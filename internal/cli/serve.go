package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeprinter/pkg/buildinfo"
	"github.com/matzehuels/treeprinter/pkg/cache"
	"github.com/matzehuels/treeprinter/pkg/errors"
	treeio "github.com/matzehuels/treeprinter/pkg/io"
	"github.com/matzehuels/treeprinter/pkg/observability"
	"github.com/matzehuels/treeprinter/pkg/tree"
	"github.com/matzehuels/treeprinter/pkg/treeprint"
)

const (
	defaultAddr        = "localhost:8080"
	maxRequestBytes    = 1 << 20
	requestTimeout     = 10 * time.Second
	shutdownTimeout    = 5 * time.Second
	headerRequestID    = "X-Request-ID"
	contentTypeText    = "text/plain; charset=utf-8"
	contentTypeJSON    = "application/json"
	defaultServerWidth = 80
	headerCache        = "X-Cache"
	responseCacheSize  = 256
	responseCacheTTL   = 10 * time.Minute
	maxResponseNodes   = maxGeneratedSize
	maxResponseCells   = 1 << 22
)

// serveCommand creates the serve command running the HTTP render API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve tree rendering over HTTP",
		Long: `Serve starts an HTTP server with two endpoints:

  POST /render   body {"tree": <tree or array>, "options": {...}, "glyph_set": "ascii", "width": 80}
                 returns the drawing as text/plain
  GET  /healthz  returns the build information

Options use the JSON names square_branches, lr_agnostic, label_gap, col_gap,
row_gap and placeholder. Missing options fall back to the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := c.loadOptions()
			if err != nil {
				return err
			}
			return c.runServer(cmd.Context(), addr, newServer(c.Logger, defaults))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	return cmd
}

func (c *CLI) runServer(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: requestTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on http://%s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(errors.ErrCodeIO, err, "listen on %s", addr)
	case <-ctx.Done():
	}

	c.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "shutdown")
	}
	return nil
}

// server renders trees for HTTP clients. Every request gets its own printer;
// identical requests are answered from an in-memory cache.
type server struct {
	logger   *log.Logger
	defaults treeprint.Options
	cache    cache.Cache
}

func newServer(logger *log.Logger, defaults treeprint.Options) http.Handler {
	s := &server{logger: logger, defaults: defaults, cache: cache.NewNullCache()}
	if mc, err := cache.NewMemoryCache(responseCacheSize); err == nil {
		s.cache = mc
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.health)
	r.Post("/render", s.render)
	return r
}

// =============================================================================
// Middleware
// =============================================================================

type requestIDKey struct{}

// requestID tags every request and response with an X-Request-ID. A valid
// UUID sent by the client is kept.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// observe reports requests to the registered HTTP hooks.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}

// =============================================================================
// Handlers
// =============================================================================

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{Status: "ok", Info: buildinfo.Get()})
}

// renderRequest is the body of POST /render.
type renderRequest struct {
	Tree     json.RawMessage   `json:"tree"`
	Options  treeprint.Options `json:"options"`
	GlyphSet string            `json:"glyph_set"`
	Width    int               `json:"width"`
}

func (s *server) render(w http.ResponseWriter, r *http.Request) {
	req := renderRequest{Options: s.defaults, Width: defaultServerWidth}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	if len(req.Tree) == 0 {
		s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "missing tree"))
		return
	}

	key, err := req.cacheKey()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	body, hit, _ := s.cache.Get(r.Context(), key)
	if !hit {
		if body, err = s.draw(req); err != nil {
			s.fail(w, r, err)
			return
		}
		_ = s.cache.Set(r.Context(), key, body, responseCacheTTL)
	}

	w.Header().Set(headerCache, cacheStatus(hit))
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// cacheKey identifies the rendering a request asks for. The glyph table is
// not part of the options' JSON form, so it is hashed separately.
func (req renderRequest) cacheKey() (string, error) {
	data, err := json.Marshal(struct {
		Tree     json.RawMessage   `json:"tree"`
		Options  treeprint.Options `json:"options"`
		Glyphs   treeprint.Glyphs  `json:"glyphs"`
		GlyphSet string            `json:"glyph_set"`
		Width    int               `json:"width"`
	}{req.Tree, req.Options, req.Options.Glyphs, req.GlyphSet, req.Width})
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "encode request")
	}
	return "render:" + cache.Hash(data), nil
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// draw renders a single tree, or a page when the request holds an array.
func (s *server) draw(req renderRequest) ([]byte, error) {
	opts := req.Options
	if req.GlyphSet != "" {
		g, err := treeprint.GlyphSet(req.GlyphSet)
		if err != nil {
			return nil, err
		}
		opts.Glyphs = g
	}

	trees, err := treeio.DecodeJSON(req.Tree)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	p := treeprint.New((*tree.Node).Label, (*tree.Node).Left, (*tree.Node).Right).
		SetOptions(opts).
		SetWriter(&buf).
		SetLogger(s.logger)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := checkDrawingSize(p, trees); err != nil {
		return nil, err
	}

	if strings.HasPrefix(strings.TrimSpace(string(req.Tree)), "[") {
		err = p.RenderPage(trees, req.Width)
	} else {
		err = p.Render(trees[0])
	}
	return buf.Bytes(), err
}

// checkDrawingSize rejects requests whose drawing would exceed the node or
// cell budget. The cell count is the bounding box area summed over all trees.
func checkDrawingSize(p *treeprint.Printer[*tree.Node], trees []*tree.Node) error {
	nodes := 0
	for _, t := range trees {
		nodes += t.Size()
	}
	if nodes > maxResponseNodes {
		return errors.New(errors.ErrCodeInvalidInput, "tree has %d nodes, at most %d allowed", nodes, maxResponseNodes)
	}

	cells := 0
	for _, t := range trees {
		ly := p.Layout(t)
		cells += ly.Width() * len(ly)
		if cells > maxResponseCells {
			return errors.New(errors.ErrCodeInvalidInput, "drawing exceeds %d cells", maxResponseCells)
		}
	}
	return nil
}

// errorResponse is the JSON body of failed requests.
type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id"`
}

func (s *server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidGlyphs, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidConfig:
		status = http.StatusBadRequest
	case "":
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("Render failed", "err", err, "id", requestIDFromContext(r.Context()))
	}
	writeJSON(w, status, errorResponse{
		Error:     errors.UserMessage(err),
		Code:      string(code),
		RequestID: requestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
