package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vadimtrunov/stockmedia/internal/shutterstock"
)

// Deps holds backend dependencies for MCP tool handlers.
type Deps struct {
	Client *shutterstock.Client
}

// Server wraps an MCP SDK server with the media search tool handlers.
type Server struct {
	server *mcpsdk.Server
	deps   Deps
	logger *slog.Logger
}

// NewServer creates an MCP server with all tools registered.
func NewServer(deps Deps, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    "stockmedia",
			Version: version,
		},
		&mcpsdk.ServerOptions{Logger: logger},
	)

	srv := &Server{server: s, deps: deps, logger: logger}
	srv.registerTools()
	return srv
}

// ServeStdio runs the MCP server over stdin/stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.server.Run(ctx, &mcpsdk.StdioTransport{})
}

// MCPServer returns the underlying MCP SDK server (for testing).
func (s *Server) MCPServer() *mcpsdk.Server {
	return s.server
}

// registerTools registers the list/get/search tools for both resources.
func (s *Server) registerTools() {
	var (
		images *shutterstock.Endpoint[shutterstock.Image, shutterstock.ImageDetails]
		videos *shutterstock.Endpoint[shutterstock.Video, shutterstock.VideoDetails]
	)
	if s.deps.Client != nil {
		images = s.deps.Client.Image
		videos = s.deps.Client.Video
	}

	s.server.AddTool(listTool("images", "image"), listHandler(images))
	s.server.AddTool(getTool("image"), getHandler(images, "image"))
	s.server.AddTool(searchTool("images"), searchHandler(images))
	s.server.AddTool(listTool("videos", "video"), listHandler(videos))
	s.server.AddTool(getTool("video"), getHandler(videos, "video"))
	s.server.AddTool(searchTool("videos"), searchHandler(videos))
}

// Tool definitions.

func listTool(plural, singular string) *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "list_" + plural,
		Description: fmt.Sprintf("Fetch %s by id. Ids that match nothing are skipped, so the result may be shorter than the input.", plural),
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"ids": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": fmt.Sprintf("The %s ids to fetch, in order", singular),
				},
			},
			"required": []any{"ids"},
		},
	}
}

func getTool(singular string) *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "get_" + singular,
		Description: fmt.Sprintf("Get full details (keywords, categories, assets) for one %s by id.", singular),
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": fmt.Sprintf("The %s id", singular),
				},
			},
			"required": []any{"id"},
		},
	}
}

func searchTool(plural string) *mcpsdk.Tool {
	return &mcpsdk.Tool{
		Name:        "search_" + plural,
		Description: fmt.Sprintf("Search %s by keyword. Without a query it lists all %s. Returns one page with page, per_page and total_count.", plural, plural),
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "Optional free-text keyword",
				},
				"page": map[string]any{
					"type":        "integer",
					"description": "Optional 1-based page number",
				},
				"per_page": map[string]any{
					"type":        "integer",
					"description": "Optional page size",
				},
				"sort": map[string]any{
					"type":        "string",
					"description": "Optional sort order: popular, newest, relevance or random",
				},
			},
		},
	}
}

// Tool handlers. Each returns JSON text content or a tool error.

func listHandler[R, D any](e *shutterstock.Endpoint[R, D]) mcpsdk.ToolHandler {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		if e == nil {
			return toolError("media API client not configured"), nil
		}

		ids, err := extractIDsFromArgs(req.Params.Arguments, "ids")
		if err != nil {
			return toolError(err.Error()), nil
		}

		result, err := e.List(ctx, ids)
		if err != nil {
			return toolError(fmt.Sprintf("list %s failed: %v", e.Resource(), err)), nil
		}
		return toolJSON(result)
	}
}

func getHandler[R, D any](e *shutterstock.Endpoint[R, D], singular string) mcpsdk.ToolHandler {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		if e == nil {
			return toolError("media API client not configured"), nil
		}

		id, err := extractIDFromArgs(req.Params.Arguments, "id")
		if err != nil {
			return toolError(err.Error()), nil
		}

		details, _, err := e.Get(ctx, id)
		if errors.Is(err, shutterstock.ErrNotFound) {
			return toolError(fmt.Sprintf("%s %s not found", singular, id)), nil
		}
		if err != nil {
			return toolError(fmt.Sprintf("get %s failed: %v", singular, err)), nil
		}
		return toolJSON(details)
	}
}

func searchHandler[R, D any](e *shutterstock.Endpoint[R, D]) mcpsdk.ToolHandler {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		if e == nil {
			return toolError("media API client not configured"), nil
		}

		var args struct {
			Query   string `json:"query"`
			Page    int    `json:"page"`
			PerPage int    `json:"per_page"`
			Sort    string `json:"sort"`
		}
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return toolError(fmt.Sprintf("invalid arguments: %v", err)), nil
			}
		}

		result, err := e.Search(ctx, shutterstock.SearchOptions{
			Query:   args.Query,
			Page:    args.Page,
			PerPage: args.PerPage,
			Sort:    args.Sort,
		})
		if err != nil {
			return toolError(fmt.Sprintf("search %s failed: %v", e.Resource(), err)), nil
		}
		return toolJSON(result)
	}
}

// Helper functions.

// toolJSON marshals v to JSON and returns it as text content.
func toolJSON(v any) (*mcpsdk.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return toolError(fmt.Sprintf("marshal result: %v", err)), nil
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil
}

// toolError returns a tool result indicating an error.
func toolError(msg string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: msg}},
		IsError: true,
	}
}

// idString accepts ids sent either as JSON strings or as non-negative integers.
// Numbers must come from a decoder with UseNumber so large ids stay exact.
func idString(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, v != ""
	case json.Number:
		s := v.String()
		if s == "" {
			return "", false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return "", false
			}
		}
		return s, true
	}
	return "", false
}

// decodeArgs decodes raw tool arguments, keeping numbers as json.Number.
func decodeArgs(raw json.RawMessage) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var args map[string]any
	if err := dec.Decode(&args); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return args, nil
}

// extractIDFromArgs extracts a single id argument from raw JSON arguments.
func extractIDFromArgs(raw json.RawMessage, key string) (string, error) {
	args, err := decodeArgs(raw)
	if err != nil {
		return "", err
	}

	val, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	id, ok := idString(val)
	if !ok {
		return "", fmt.Errorf("%s must be a non-empty string or integer", key)
	}
	return id, nil
}

// extractIDsFromArgs extracts an ordered id list from raw JSON arguments.
func extractIDsFromArgs(raw json.RawMessage, key string) ([]string, error) {
	args, err := decodeArgs(raw)
	if err != nil {
		return nil, err
	}

	val, ok := args[key]
	if !ok {
		return nil, fmt.Errorf("%s is required", key)
	}
	items, ok := val.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an array, got %T", key, val)
	}

	ids := make([]string, 0, len(items))
	for i, item := range items {
		id, ok := idString(item)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be a non-empty string or integer", key, i)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
