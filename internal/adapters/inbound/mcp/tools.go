package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/reachdrift/internal/adapters/inbound/wiring"
	cacheAdapter "github.com/abdidvp/reachdrift/internal/adapters/outbound/cache"
	"github.com/abdidvp/reachdrift/internal/adapters/outbound/parser"
	"github.com/abdidvp/reachdrift/internal/application"
	"github.com/abdidvp/reachdrift/internal/domain"
)

// registerTools registers all reachdrift MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, log *slog.Logger) {
	// 1. reachdrift_scan
	s.AddTool(
		mcplib.NewTool("reachdrift_scan",
			mcplib.WithDescription("Run the verifier in coverage and property mode on every source file and return the classification summary as JSON"),
			mcplib.WithString("path", mcplib.Description("Directory to scan, relative to the project root (default: project root)")),
			mcplib.WithString("framing", mcplib.Description("Transcript framing: balanced or lines (default: from .reachdrift.yaml)")),
			mcplib.WithBoolean("no_cache", mcplib.Description("Ignore cached transcripts")),
		),
		handleScan(projectPath, log),
	)

	// 2. reachdrift_compare
	s.AddTool(
		mcplib.NewTool("reachdrift_compare",
			mcplib.WithDescription("Classify one file from a pair of verifier transcripts without running the verifier"),
			mcplib.WithString("property_report", mcplib.Required(), mcplib.Description("Raw property-mode transcript")),
			mcplib.WithString("coverage_report", mcplib.Description("Raw coverage-mode transcript")),
			mcplib.WithString("name", mcplib.Description("Label for the file in the result")),
			mcplib.WithString("framing", mcplib.Description("Transcript framing: balanced or lines (default: balanced)")),
		),
		handleCompare(),
	)
}

func handleScan(projectPath string, log *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		root := projectPath
		if rel := request.GetString("path", ""); rel != "" {
			if filepath.IsAbs(rel) {
				root = rel
			} else {
				root = filepath.Join(projectPath, rel)
			}
		}

		opts := []application.DriftOption{
			application.WithFraming(domain.Framing(request.GetString("framing", ""))),
		}
		if !request.GetBool("no_cache", false) {
			opts = append(opts, application.WithCache(cacheAdapter.New()))
		}

		summary, err := wiring.NewDriftService(log, opts...).Run(ctx, root)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		wiring.RecordRun(root, summary, true, log)
		return jsonResult(summary)
	}
}

func handleCompare() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		propertyRaw, err := request.RequireString("property_report")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		framing := domain.Framing(request.GetString("framing", ""))
		if framing != "" && framing != domain.FramingBalanced && framing != domain.FramingLines {
			return errorResult(fmt.Sprintf("unknown framing %q (valid: balanced, lines)", framing)), nil
		}

		svc := application.NewCompareService(parser.New(framing))
		result := svc.Compare(
			request.GetString("name", "input"),
			request.GetString("coverage_report", ""),
			propertyRaw,
		)
		if result.Classification == domain.Failed {
			return errorResult(fmt.Sprintf("compare failed: %s", result.Error)), nil
		}
		return jsonResult(result)
	}
}

// jsonResult marshals v to indented JSON and wraps it in a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
