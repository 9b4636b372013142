package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/history"
	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/tui"
	"github.com/ScottGunn22/dirchecker/internal/domain"
)

// registerResources registers all dirchecker MCP resources on the given
// server.
func registerResources(s *server.MCPServer) {
	// 1. qc://history - the QC run log
	s.AddResource(
		mcplib.NewResource(
			"qc://history",
			"QC Run History",
			mcplib.WithResourceDescription("Past structure and report QC runs recorded in the working directory"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(),
	)

	// 2. qc://expected-structure/{test_type} - the required tree (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"qc://expected-structure/{test_type}",
			"Expected Structure",
			mcplib.WithTemplateDescription("Expected deliverable directory tree and file set for a test type"),
			mcplib.WithTemplateMIMEType("text/plain"),
		),
		handleExpectedStructureResource(),
	)
}

func handleHistoryResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(".")
		if err != nil {
			return nil, fmt.Errorf("loading run history: %w", err)
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling history: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "qc://history",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleExpectedStructureResource() server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		name, ok := request.Params.Arguments["test_type"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("test type is required")
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/plain",
				Text:     tui.RenderExpectedStructure(domain.ParseTestType(name)),
			},
		}, nil
	}
}
