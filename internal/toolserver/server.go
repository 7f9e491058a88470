// Package toolserver exposes the job query operations as MCP tools
// over stdio, using mcp-go for the protocol handshake and framing.
package toolserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jobfeedhq/jobfeed/internal/model"
	"github.com/jobfeedhq/jobfeed/internal/query"
)

// ServerName is the MCP server name announced during initialize.
const ServerName = "job-posting-mcp"

// Server is the MCP tool surface over a Backend.
type Server struct {
	mcp *server.MCPServer
}

// New builds the MCP server and registers the five job tools.
func New(backend Backend, version string) *Server {
	s := server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
	)

	s.AddTool(searchJobsTool(), searchJobsHandler(backend))
	s.AddTool(getJobDetailsTool(), getJobDetailsHandler(backend))
	s.AddTool(listAllJobsTool(), listAllJobsHandler(backend))
	s.AddTool(getCompaniesTool(), getCompaniesHandler(backend))
	s.AddTool(getTechStacksTool(), getTechStacksHandler(backend))

	return &Server{mcp: s}
}

// ServeStdio blocks serving JSON-RPC on stdin/stdout until EOF.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func searchJobsTool() mcp.Tool {
	return mcp.NewTool("search_jobs",
		mcp.WithDescription("Search for jobs by title, company, location, or tech stack"),
		mcp.WithString("query",
			mcp.Description("Search query (can be job title, company, location, or technology)"),
		),
		mcp.WithString("location",
			mcp.Description("Filter by location (optional)"),
		),
		mcp.WithBoolean("remote",
			mcp.Description("Filter by remote work availability (optional)"),
		),
		mcp.WithBoolean("visa_sponsorship",
			mcp.Description("Filter by visa sponsorship availability (optional)"),
		),
		mcp.WithString("experience_level",
			mcp.Description("Filter by experience level (Entry, Mid, Mid-Senior, Senior) (optional)"),
		),
	)
}

func getJobDetailsTool() mcp.Tool {
	return mcp.NewTool("get_job_details",
		mcp.WithDescription("Get detailed information about a specific job by ID"),
		mcp.WithString("job_id",
			mcp.Required(),
			mcp.Description("The unique job ID"),
		),
	)
}

func listAllJobsTool() mcp.Tool {
	return mcp.NewTool("list_all_jobs",
		mcp.WithDescription("Get a list of all available job postings"),
	)
}

func getCompaniesTool() mcp.Tool {
	return mcp.NewTool("get_companies",
		mcp.WithDescription("Get a list of all companies with job postings"),
	)
}

func getTechStacksTool() mcp.Tool {
	return mcp.NewTool("get_tech_stacks",
		mcp.WithDescription("Get a list of all technologies mentioned in job postings"),
	)
}

func searchJobsHandler(backend Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		c := criteriaFromArgs(req.GetArguments())
		result, err := backend.Search(ctx, c)
		if err != nil {
			return nil, err
		}
		return textResult(result)
	}
}

func getJobDetailsHandler(backend Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, _ := req.GetArguments()["job_id"].(string)

		job, err := backend.JobByID(ctx, id)
		if err != nil {
			var notFound *model.NotFoundError
			if errors.As(err, &notFound) {
				// Lookup miss is a plain text message on this surface,
				// not a protocol error.
				return mcp.NewToolResultText(fmt.Sprintf("Job with ID '%s' not found", id)), nil
			}
			var invalid *model.InvalidArgumentError
			if errors.As(err, &invalid) {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return nil, err
		}
		return textResult(job)
	}
}

func listAllJobsHandler(backend Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := backend.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return textResult(result)
	}
}

func getCompaniesHandler(backend Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := backend.Companies(ctx)
		if err != nil {
			return nil, err
		}
		return textResult(result)
	}
}

func getTechStacksHandler(backend Backend) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := backend.Technologies(ctx)
		if err != nil {
			return nil, err
		}
		return textResult(result)
	}
}

// criteriaFromArgs converts the loose tool arguments into typed criteria.
// Absent booleans stay nil so "not filtered" and "false" stay distinct.
func criteriaFromArgs(args map[string]any) query.Criteria {
	var c query.Criteria
	if v, ok := args["query"].(string); ok {
		c.Query = v
	}
	if v, ok := args["location"].(string); ok {
		c.Location = v
	}
	if v, ok := args["remote"].(bool); ok {
		c.Remote = &v
	}
	if v, ok := args["visa_sponsorship"].(bool); ok {
		c.VisaSponsorship = &v
	}
	if v, ok := args["experience_level"].(string); ok {
		c.ExperienceLevel = v
	}
	return c
}

func textResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
