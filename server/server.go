package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lixenwraith/termfolio/chat"
	"github.com/lixenwraith/termfolio/shell"
	"github.com/lixenwraith/termfolio/status"
)

// shutdownTimeout bounds graceful shutdown after the run context ends
const shutdownTimeout = 5 * time.Second

// Options configures the web host
type Options struct {
	Addr      string
	StaticDir string
	AccessLog io.Writer          // Request log destination, nil discards
	Metrics   *status.Registry   // Request counters, nil creates a private registry
	Commands  *shell.Interpreter // Shell command table, nil selects the built-in commands
}

// Server hosts the portfolio page and the chat API
type Server struct {
	opts      Options
	responder *chat.Responder
	router    *gin.Engine
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type shellRequest struct {
	Command string `json:"command"`
}

type shellLine struct {
	Text  string `json:"text"`
	Error bool   `json:"error,omitempty"`
}

type shellResponse struct {
	Command string      `json:"command,omitempty"`
	Lines   []shellLine `json:"lines"`
	Clear   bool        `json:"clear,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New builds the router, gin mode must be set by the caller beforehand
func New(opts Options, responder *chat.Responder) *Server {
	if opts.AccessLog == nil {
		opts.AccessLog = io.Discard
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}
	if opts.Commands == nil {
		opts.Commands = shell.NewInterpreter(nil, nil)
	}
	s := &Server{opts: opts, responder: responder}

	r := gin.New()
	r.Use(gin.LoggerWithWriter(opts.AccessLog), gin.Recovery())

	r.GET("/", s.handleIndex)
	r.Static("/static", opts.StaticDir)
	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	api.POST("/chat", s.handleChat)
	api.POST("/shell", s.handleShell)
	api.GET("/commands", s.handleCommands)
	api.GET("/topics", s.handleTopics)
	api.GET("/stats", s.handleStats)

	s.router = r
	return s
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server: listening on %s", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", s.opts.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Printf("server: stopped")
	return nil
}

func (s *Server) handleIndex(c *gin.Context) {
	c.File(filepath.Join(s.opts.StaticDir, "index.html"))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "message is required"})
		return
	}

	a := s.responder.Answer(req.Message)

	m := s.opts.Metrics
	m.Inc("chat.requests")
	if a.Kind == chat.KindTopic {
		m.Inc("chat.topic." + a.Topic)
	} else {
		m.Inc("chat." + a.Kind.String())
	}
	c.JSON(http.StatusOK, chatResponse{Reply: a.Text})
}

func (s *Server) handleStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.opts.Metrics.Snapshot())
}

func (s *Server) handleTopics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"topics": s.responder.Table().Keywords()})
}

// handleShell runs one command, blank input answers with no lines like an empty prompt
func (s *Server) handleShell(c *gin.Context) {
	var req shellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	res := s.opts.Commands.Exec(req.Command)
	if res.Unknown() {
		s.opts.Metrics.Inc("shell.unknown")
	} else if res.Command != "" {
		s.opts.Metrics.Inc("shell.command." + res.Command)
	}

	resp := shellResponse{Command: res.Command, Lines: make([]shellLine, len(res.Lines)), Clear: res.Clear}
	for i, l := range res.Lines {
		resp.Lines[i] = shellLine{Text: l.Text, Error: l.Kind == shell.LineError}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCommands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"commands": s.opts.Commands.Table().Names()})
}
