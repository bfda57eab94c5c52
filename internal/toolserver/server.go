// Package toolserver exposes a running FriCAS session as an MCP tool
// server over stdio, so agent frontends can evaluate expressions
// without speaking the engine's prompt protocol themselves.
package toolserver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Engine is the slice of the session API the tool handlers need.
type Engine interface {
	// Request sends one input line and returns its response, cleaned
	// unless raw is set.
	Request(ctx context.Context, line string, raw bool) (string, error)

	// Banner returns the startup banner captured when the engine
	// launched.
	Banner() string
}

// Config holds configuration for the tool server.
type Config struct {
	// Name reported in the MCP initialize handshake.
	Name string

	// Version reported in the MCP initialize handshake.
	Version string

	// Engine executes tool calls. Required.
	Engine Engine

	// Logger is optional; nil means silent.
	Logger *slog.Logger
}

// Server bridges MCP tool calls to a FriCAS engine.
type Server struct {
	server *mcp.Server
	engine Engine
	log    *slog.Logger
}

// whatCategories are the argument values FriCAS accepts for )what.
var whatCategories = map[string]bool{
	"categories": true,
	"commands":   true,
	"domains":    true,
	"operations": true,
	"packages":   true,
	"synonym":    true,
	"things":     true,
}

// New creates a tool server wired to the given engine.
func New(cfg *Config) (*Server, error) {
	if cfg == nil || cfg.Engine == nil {
		return nil, fmt.Errorf("toolserver: engine is required")
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		}, nil),
		engine: cfg.Engine,
		log:    log.With("component", "toolserver"),
	}

	s.server.AddTool(NewTool(
		"fricas_eval",
		"Evaluate a FriCAS expression and return its output",
		SimpleSchema(map[string]string{"expression": "string", "raw": "bool"}, "expression"),
	), s.handleEval)

	s.server.AddTool(NewTool(
		"fricas_version",
		"Return FriCAS version identification from the startup banner",
		SimpleSchema(nil),
	), s.handleVersion)

	s.server.AddTool(NewTool(
		"fricas_what",
		"List FriCAS operations, domains, packages or commands matching a pattern",
		SimpleSchema(map[string]string{"category": "string", "pattern": "string"}, "category"),
	), s.handleWhat)

	return s, nil
}

// Run serves MCP over stdio until the context is canceled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("Starting MCP tool server over stdio")

	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) handleEval(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := ParseArguments(req)
	if err != nil {
		return ErrorResult(err.Error()), nil
	}

	expr, _ := args["expression"].(string)
	if strings.TrimSpace(expr) == "" {
		return ErrorResult("expression is required"), nil
	}

	raw, _ := args["raw"].(bool)

	s.log.Debug("Tool call", "tool", "fricas_eval", "expression", expr, "raw", raw)

	out, err := s.engine.Request(ctx, expr, raw)
	if err != nil {
		return ErrorResult(err.Error()), nil
	}

	return TextResult(out), nil
}

func (s *Server) handleVersion(_ context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	banner := s.engine.Banner()
	if strings.TrimSpace(banner) == "" {
		return ErrorResult("no startup banner captured"), nil
	}

	return TextResult(banner), nil
}

func (s *Server) handleWhat(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := ParseArguments(req)
	if err != nil {
		return ErrorResult(err.Error()), nil
	}

	category, _ := args["category"].(string)
	if !whatCategories[category] {
		return ErrorResult(fmt.Sprintf("unknown category %q", category)), nil
	}

	line := ")what " + category
	if pattern, _ := args["pattern"].(string); pattern != "" {
		line += " " + pattern
	}

	s.log.Debug("Tool call", "tool", "fricas_what", "line", line)

	out, err := s.engine.Request(ctx, line, false)
	if err != nil {
		return ErrorResult(err.Error()), nil
	}

	return TextResult(out), nil
}
