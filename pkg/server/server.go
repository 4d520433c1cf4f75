package server

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/bastiangx/teny/pkg/config"
	"github.com/bastiangx/teny/pkg/engine"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/time/rate"
)

// Server handles msgpack IPC for engine requests
type Server struct {
	dispatcher *Dispatcher
	limiter    *rate.Limiter
	decoder    *msgpack.Decoder
	writer     *bufio.Writer
	encoder    *msgpack.Encoder
}

// NewServer creates an IPC server on stdin/stdout
func NewServer(holder *engine.Holder, cfg config.ServerConfig) *Server {
	return NewServerWithIO(holder, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates an IPC server reading from r and writing to w
func NewServerWithIO(holder *engine.Holder, cfg config.ServerConfig, r io.Reader, w io.Writer) *Server {
	bw := bufio.NewWriter(w)
	enc := msgpack.NewEncoder(bw)
	enc.SetSortMapKeys(true)
	enc.SetCustomStructTag("json")

	dec := msgpack.NewDecoder(bufio.NewReader(r))
	dec.SetCustomStructTag("json")

	return &Server{
		dispatcher: NewDispatcher(holder),
		limiter:    newLimiter(cfg),
		decoder:    dec,
		writer:     bw,
		encoder:    enc,
	}
}

func newLimiter(cfg config.ServerConfig) *rate.Limiter {
	if cfg.RateLimit <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
}

// Start reads requests until EOF or until ctx is done.
// Malformed messages get an error response and the loop keeps going;
// a broken stream ends it.
func (s *Server) Start(ctx context.Context) error {
	log.Debug("Starting IPC server.")
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("IPC input closed")
				return nil
			}
			log.Errorf("Reading request stream: %v", err)
			s.sendError("", "invalid msgpack stream", http.StatusBadRequest)
			return err
		}
		s.handleMessage(raw)
	}
}

func (s *Server) handleMessage(raw msgpack.RawMessage) {
	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		log.Errorf("Unmarshaling request: %v", err)
		s.sendError("", "invalid request", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if !s.limiter.Allow() {
		rateLimited.WithLabelValues("ipc").Inc()
		s.sendError(req.ID, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	start := time.Now()
	res, err := s.dispatcher.Dispatch(req)
	if err != nil {
		var derr *Error
		if errors.As(err, &derr) {
			s.sendError(req.ID, derr.Message, derr.Code)
		} else {
			s.sendError(req.ID, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	s.send(Response{
		ID:        req.ID,
		Op:        req.Op,
		Result:    res,
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) send(v any) {
	if err := s.encoder.Encode(v); err != nil {
		log.Errorf("Encoding response: %v", err)
		return
	}
	if err := s.writer.Flush(); err != nil {
		log.Errorf("Writing response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
