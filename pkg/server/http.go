package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bastiangx/teny/pkg/config"
	"github.com/bastiangx/teny/pkg/engine"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

// WordRequest is the body of word-level routes.
type WordRequest struct {
	Word string `json:"word"`
}

// TextRequest is the body of sentence-level routes.
type TextRequest struct {
	Text string `json:"text"`
}

// ContextRequest is the body of /api/autocomplete.
type ContextRequest struct {
	Context string `json:"context"`
	Limit   int    `json:"limit"`
}

// PrefixRequest is the body of /api/complete.
type PrefixRequest struct {
	Prefix string `json:"prefix"`
	Limit  int    `json:"limit"`
}

// SuggestRequest is the body of /api/suggest.
type SuggestRequest struct {
	Word  string `json:"word"`
	Limit int    `json:"limit"`
}

// TranslateRequest is the body of /api/translate.
type TranslateRequest struct {
	Word      string `json:"word"`
	Direction string `json:"direction"`
}

// Handlers serves the HTTP API over a dispatcher.
type Handlers struct {
	dispatcher *Dispatcher
	limiter    *rate.Limiter
}

// NewHandlers creates handlers reading engines from holder.
func NewHandlers(holder *engine.Holder, cfg config.ServerConfig) *Handlers {
	return &Handlers{dispatcher: NewDispatcher(holder), limiter: newLimiter(cfg)}
}

// NewRouter registers every route on a fresh gin engine.
func NewRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.rateLimit)

	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/check-spelling", h.CheckSpelling)
	api.POST("/suggest", h.Suggest)
	api.POST("/autocomplete", h.Autocomplete)
	api.POST("/complete", h.Complete)
	api.POST("/translate", h.Translate)
	api.POST("/analyze-sentiment", h.AnalyzeSentiment)
	api.POST("/lemmatize", h.Lemmatize)
	api.POST("/extract-entities", h.ExtractEntities)
	api.POST("/validate-phonetics", h.ValidatePhonetics)
	api.POST("/native", h.Native)
	api.GET("/stats", h.Stats)
	api.POST("/reload", h.Reload)
	return r
}

// NewHTTPHandler builds the router and wraps it with CORS when enabled.
func NewHTTPHandler(holder *engine.Holder, cfg config.ServerConfig) http.Handler {
	recordLexicon(holder.Get().Lexicon())
	r := NewRouter(NewHandlers(holder, cfg))
	if !cfg.EnableCORS {
		return r
	}
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)
}

// ListenAndServe serves the HTTP API on cfg.Addr until ctx is done.
func ListenAndServe(ctx context.Context, holder *engine.Holder, cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewHTTPHandler(holder, cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server listening on %s", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("Shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	}
}

func (h *Handlers) rateLimit(c *gin.Context) {
	if !h.limiter.Allow() {
		rateLimited.WithLabelValues("http").Inc()
		c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
			Error: "rate limit exceeded",
			Code:  http.StatusTooManyRequests,
		})
		return
	}
	c.Next()
}

// run dispatches req and writes the payload or the error as JSON.
func (h *Handlers) run(c *gin.Context, req Request) {
	res, err := h.dispatcher.Dispatch(req)
	if err != nil {
		var derr *Error
		if !errors.As(err, &derr) {
			derr = &Error{Code: http.StatusInternalServerError, Message: err.Error()}
		}
		c.JSON(derr.Code, ErrorResponse{Error: derr.Message, Code: derr.Code})
		return
	}
	c.JSON(http.StatusOK, res)
}

// bind decodes the JSON body into v, writing a 400 on failure.
func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		log.Debugf("Invalid request body on %s: %v", c.FullPath(), err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
			Code:  http.StatusBadRequest,
		})
		return false
	}
	return true
}

// CheckSpelling handles POST /api/check-spelling
func (h *Handlers) CheckSpelling(c *gin.Context) {
	var body WordRequest
	if bind(c, &body) {
		h.run(c, Request{Op: OpCheck, Text: body.Word})
	}
}

// Suggest handles POST /api/suggest
func (h *Handlers) Suggest(c *gin.Context) {
	var body SuggestRequest
	if bind(c, &body) {
		h.run(c, Request{Op: OpSuggest, Text: body.Word, Limit: body.Limit})
	}
}

// Autocomplete handles POST /api/autocomplete
func (h *Handlers) Autocomplete(c *gin.Context) {
	var body ContextRequest
	if bind(c, &body) {
		h.run(c, Request{Op: OpPredict, Text: body.Context, Limit: body.Limit})
	}
}

// Complete handles POST /api/complete
func (h *Handlers) Complete(c *gin.Context) {
	var body PrefixRequest
	if bind(c, &body) {
		h.run(c, Request{Op: OpComplete, Text: body.Prefix, Limit: body.Limit})
	}
}

// Translate handles POST /api/translate
func (h *Handlers) Translate(c *gin.Context) {
	var body TranslateRequest
	if bind(c, &body) {
		h.run(c, Request{Op: OpTranslate, Text: body.Word, Direction: body.Direction})
	}
}

// AnalyzeSentiment handles POST /api/analyze-sentiment
func (h *Handlers) AnalyzeSentiment(c *gin.Context) {
	var body TextRequest
	if bind(c, &body) {
		h.run(c, Request{Op: OpSentiment, Text: body.Text})
	}
}

// Lemmatize handles POST /api/lemmatize
func (h *Handlers) Lemmatize(c *gin.Context) {
	var body WordRequest
	if bind(c, &body) {
		h.run(c, Request{Op: OpLemmatize, Text: body.Word})
	}
}

// ExtractEntities handles POST /api/extract-entities
func (h *Handlers) ExtractEntities(c *gin.Context) {
	var body TextRequest
	if bind(c, &body) {
		h.run(c, Request{Op: OpEntities, Text: body.Text})
	}
}

// ValidatePhonetics handles POST /api/validate-phonetics
func (h *Handlers) ValidatePhonetics(c *gin.Context) {
	var body WordRequest
	if bind(c, &body) {
		h.run(c, Request{Op: OpPhonetics, Text: body.Word})
	}
}

// Native handles POST /api/native
func (h *Handlers) Native(c *gin.Context) {
	var body WordRequest
	if bind(c, &body) {
		h.run(c, Request{Op: OpNative, Text: body.Word})
	}
}

// Health handles GET /healthz
func (h *Handlers) Health(c *gin.Context) {
	h.run(c, Request{Op: OpHealth})
}

// Stats handles GET /api/stats
func (h *Handlers) Stats(c *gin.Context) {
	h.run(c, Request{Op: OpStats})
}

// Reload handles POST /api/reload
func (h *Handlers) Reload(c *gin.Context) {
	h.run(c, Request{Op: OpReload})
}
