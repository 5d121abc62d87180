// Package mcp exposes the notation engine as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/neon-law-foundation/notation"
	"github.com/neon-law-foundation/notation/pkg/domain"
	"github.com/neon-law-foundation/notation/pkg/jsonfield"
)

const fieldsResourceURI = "notation://fields"

// Engine defines the operations the MCP server needs from the notation engine.
type Engine interface {
	Validate(ctx context.Context, raw string, opts ...notation.ValidateOption) (domain.ValidationResponse, error)
	ValidateField(kind jsonfield.Kind, text string) (domain.SchemaValidationResult, error)
	FieldKinds() []jsonfield.Kind
	Graph(raw string, machine domain.Machine) (string, error)
}

// ValidateArgs are the arguments of validate_notation.
type ValidateArgs struct {
	Document        string `json:"document"`
	IncludeWarnings bool   `json:"include_warnings,omitempty"`
}

// FieldArgs are the arguments of validate_field.
type FieldArgs struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// GraphArgs are the arguments of notation_graph.
type GraphArgs struct {
	Document string `json:"document"`
	Machine  string `json:"machine,omitempty"`
}

// GraphResponse carries a rendered flowchart.
type GraphResponse struct {
	Machine string `json:"machine" jsonschema_description:"The machine that was rendered"`
	Mermaid string `json:"mermaid" jsonschema_description:"Mermaid flowchart source"`
}

// Server wraps the notation Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("notation-mcp", notation.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on addr until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, addr, baseURL string) error {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: validate_notation
	validateTool := mcp.NewTool("validate_notation",
		mcp.WithDescription("Validate a notation document (YAML frontmatter plus Markdown body) and report every finding."),
		mcp.WithString("document", mcp.Required(), mcp.Description("The full notation document text")),
		mcp.WithBoolean("include_warnings", mcp.Description("Also report non-blocking warnings")),
		mcp.WithOutputSchema[domain.ValidationResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	// TOOL: validate_field
	fieldTool := mcp.NewTool("validate_field",
		mcp.WithDescription("Validate a JSON field value such as a question map, document mappings or a changelog."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Field kind"), mcp.Enum(s.kindNames()...)),
		mcp.WithString("value", mcp.Required(), mcp.Description("JSON text of the field")),
		mcp.WithOutputSchema[domain.SchemaValidationResult](),
	)
	s.mcpServer.AddTool(fieldTool, mcp.NewStructuredToolHandler(s.handleField))

	// TOOL: notation_graph
	graphTool := mcp.NewTool("notation_graph",
		mcp.WithDescription("Render a state machine of a notation document as a Mermaid flowchart."),
		mcp.WithString("document", mcp.Required(), mcp.Description("The full notation document text")),
		mcp.WithString("machine", mcp.Description("Machine to render"), mcp.Enum(string(domain.MachineFlow), string(domain.MachineAlignment))),
		mcp.WithOutputSchema[GraphResponse](),
	)
	s.mcpServer.AddTool(graphTool, mcp.NewStructuredToolHandler(s.handleGraph))
}

func (s *Server) kindNames() []string {
	kinds := s.engine.FieldKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

func (s *Server) handleValidate(ctx context.Context, _ mcp.CallToolRequest, args ValidateArgs) (domain.ValidationResponse, error) {
	var opts []notation.ValidateOption
	if args.IncludeWarnings {
		opts = append(opts, notation.WithWarnings())
	}
	res, err := s.engine.Validate(ctx, args.Document, opts...)
	if err != nil {
		s.logger.Error("MCP validate failed", "error", err)
		return domain.ValidationResponse{}, fmt.Errorf("validate failed: %w", err)
	}
	return res, nil
}

func (s *Server) handleField(_ context.Context, _ mcp.CallToolRequest, args FieldArgs) (domain.SchemaValidationResult, error) {
	res, err := s.engine.ValidateField(jsonfield.Kind(args.Kind), args.Value)
	if err != nil {
		return domain.SchemaValidationResult{}, fmt.Errorf("validate field failed: %w", err)
	}
	return res, nil
}

func (s *Server) handleGraph(_ context.Context, _ mcp.CallToolRequest, args GraphArgs) (GraphResponse, error) {
	machine := domain.MachineFlow
	if args.Machine != "" {
		machine = domain.Machine(args.Machine)
	}
	chart, err := s.engine.Graph(args.Document, machine)
	if err != nil {
		return GraphResponse{}, fmt.Errorf("graph failed: %w", err)
	}
	return GraphResponse{Machine: string(machine), Mermaid: chart}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: notation://fields
	s.mcpServer.AddResource(mcp.NewResource(fieldsResourceURI, "JSON Field Kinds",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.kindNames())
		if err != nil {
			return nil, fmt.Errorf("failed to encode field kinds: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      fieldsResourceURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
