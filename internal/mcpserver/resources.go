package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// registerResources exposes read-only account snapshots as MCP resources.
// Each one mirrors a tool so clients can subscribe-style poll without a
// tool call.
func (s *Server) registerResources() {
	s.addResource("dhan://profile", "Account Profile",
		"User profile and token validity",
		func(ctx context.Context) (any, error) { return s.api.GetProfile(ctx) })

	s.addResource("dhan://orders", "Order Book",
		"All orders placed today",
		func(ctx context.Context) (any, error) { return s.api.GetOrders(ctx) })

	s.addResource("dhan://trades", "Trade Book",
		"All trades executed today",
		func(ctx context.Context) (any, error) { return s.api.GetTrades(ctx) })

	s.addResource("dhan://positions", "Open Positions",
		"All open trading positions",
		func(ctx context.Context) (any, error) { return s.api.GetPositions(ctx) })

	s.addResource("dhan://holdings", "Holdings",
		"Long-term demat holdings",
		func(ctx context.Context) (any, error) { return s.api.GetHoldings(ctx) })

	s.addResource("dhan://funds", "Fund Limits",
		"Available balance and margin utilization",
		func(ctx context.Context) (any, error) { return s.api.GetFundLimits(ctx) })

	s.addResource("dhan://instruments", "Instrument Master Status",
		"Local instrument master freshness and size",
		s.instrumentStatus)
}

func (s *Server) addResource(uri, name, description string, fetch func(context.Context) (any, error)) {
	resource := mcp.NewResource(uri, name,
		mcp.WithResourceDescription(description),
		mcp.WithMIMEType("application/json"),
	)
	s.mcp.AddResource(resource, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		payload, err := fetch(ctx)
		if err != nil {
			s.log.Error().Str("resource", uri).Err(err).Msg("resource read failed")
			return nil, fmt.Errorf("reading %s: %w", uri, err)
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", uri, err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}

type masterStatus struct {
	Instruments int    `json:"instruments"`
	LoadedAt    string `json:"loadedAt,omitempty"`
	Stale       bool   `json:"stale"`
}

func (s *Server) instrumentStatus(ctx context.Context) (any, error) {
	count, err := s.instruments.Count(ctx)
	if err != nil {
		return nil, err
	}
	status := masterStatus{Instruments: count, Stale: true}
	if loadedAt, ok := s.instruments.LoadedAt(ctx); ok {
		status.LoadedAt = loadedAt.Format(time.RFC3339)
		status.Stale = time.Since(loadedAt) > 24*time.Hour
	}
	return status, nil
}
