package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/config"
	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/gitinfo"
	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/history"
	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/pdfreader"
	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/scanner"
	"github.com/ScottGunn22/dirchecker/internal/adapters/outbound/tui"
	"github.com/ScottGunn22/dirchecker/internal/application"
	"github.com/ScottGunn22/dirchecker/internal/domain"
)

// registerTools registers all dirchecker MCP tools on the given server.
func registerTools(s *server.MCPServer) {
	// 1. qc_check_structure
	s.AddTool(
		mcplib.NewTool("qc_check_structure",
			mcplib.WithDescription("Check an engagement directory against the required deliverable tree. Returns the structure report as JSON."),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Engagement base directory to check"),
			),
			mcplib.WithString("test_type",
				mcplib.Description("Engagement test type (SB or other; default SB)"),
			),
		),
		handleCheckStructure(),
	)

	// 2. qc_validate_report
	s.AddTool(
		mcplib.NewTool("qc_validate_report",
			mcplib.WithDescription("Validate the required header fields on the first page of a report PDF. Returns the validation report as JSON."),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path to the report PDF"),
			),
		),
		handleValidateReport(),
	)

	// 3. qc_expected_structure
	s.AddTool(
		mcplib.NewTool("qc_expected_structure",
			mcplib.WithDescription("Returns the expected deliverable directory tree and file set for a test type"),
			mcplib.WithString("test_type",
				mcplib.Description("Engagement test type (SB or other; default SB)"),
			),
		),
		handleExpectedStructure(),
	)
}

// newStructureService wires the standard adapters for a structure check.
func newStructureService() *application.StructureService {
	return application.NewStructureService(
		scanner.New(),
		config.New(),
		history.New(),
		gitinfo.New(),
	)
}

func handleCheckStructure() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		testType := requestTestType(request)

		report, err := newStructureService().CheckStructure(path, testType)
		if err != nil {
			return errorResult(fmt.Sprintf("structure check failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleValidateReport() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewReportService(
			pdfreader.New(),
			config.New(),
			history.New(),
			gitinfo.New(),
		)
		report, err := svc.ValidateReport(path)
		if err != nil {
			return errorResult(fmt.Sprintf("report validation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleExpectedStructure() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return textResult(tui.RenderExpectedStructure(requestTestType(request))), nil
	}
}

// requestTestType reads the optional test_type argument, defaulting to SB.
func requestTestType(request mcplib.CallToolRequest) domain.TestType {
	name, _ := request.GetArguments()["test_type"].(string)
	if name == "" {
		return domain.TestTypeSB
	}
	return domain.ParseTestType(name)
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
