package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerAccountTools() {
	s.mcp.AddTool(mcp.NewTool("get_profile",
		mcp.WithDescription("Get user profile and account information"),
	), s.handleGetProfile)

	s.mcp.AddTool(mcp.NewTool("validate_token",
		mcp.WithDescription("Validate the current access token and report its expiry"),
	), s.handleValidateToken)

	s.mcp.AddTool(mcp.NewTool("get_fund_limits",
		mcp.WithDescription("Get trading account fund information including available balance and margin utilization"),
	), s.handleGetFundLimits)
}

func (s *Server) handleGetProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := s.api.GetProfile(ctx)
	if err != nil {
		return s.toolError("get_profile", err)
	}
	return jsonResult(profile)
}

// tokenStatus is the shaped validate_token result.
type tokenStatus struct {
	Valid          bool   `json:"valid"`
	DhanClientID   string `json:"dhanClientId"`
	TokenValidity  string `json:"tokenValidity"`
	ActiveSegments string `json:"activeSegments"`
}

func (s *Server) handleValidateToken(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := s.api.GetProfile(ctx)
	if err != nil {
		return s.toolError("validate_token", err)
	}
	return jsonResult(tokenStatus{
		Valid:          true,
		DhanClientID:   profile.DhanClientID,
		TokenValidity:  profile.TokenValidity,
		ActiveSegments: profile.ActiveSegment,
	})
}

func (s *Server) handleGetFundLimits(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	funds, err := s.api.GetFundLimits(ctx)
	if err != nil {
		return s.toolError("get_fund_limits", err)
	}
	return jsonResult(funds)
}
