package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vikkysarswat/dhan-mcp-server/internal/instruments"
	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

func (s *Server) registerInstrumentTools() {
	s.mcp.AddTool(mcp.NewTool("get_instrument_master",
		mcp.WithDescription("Get the instrument list for one exchange segment from the broker API"),
		mcp.WithString("exchange_segment",
			mcp.Required(),
			mcp.Enum(segmentValues()...),
		),
	), s.handleInstrumentMaster)

	s.mcp.AddTool(mcp.NewTool("search_instruments",
		mcp.WithDescription("Search the local instrument master by symbol or company name"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Symbol fragment or company name"),
		),
		mcp.WithString("exchange_segment",
			mcp.Description("Restrict results to one segment"),
			mcp.Enum(segmentValues()...),
		),
		mcp.WithString("instrument_type",
			mcp.Description("Restrict results to one instrument type, e.g. EQUITY, OPTIDX, FUTSTK"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum results, default 20, cap 100"),
		),
	), s.handleSearchInstruments)
}

func (s *Server) handleInstrumentMaster(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	segmentStr, err := requireString(req.GetArguments(), "exchange_segment")
	if err != nil {
		return s.toolError("get_instrument_master", err)
	}
	list, err := s.api.GetInstrumentsBySegment(ctx, models.ExchangeSegment(segmentStr))
	if err != nil {
		return s.toolError("get_instrument_master", err)
	}
	return jsonResult(list)
}

func (s *Server) handleSearchInstruments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	text, err := requireString(args, "query")
	if err != nil {
		return s.toolError("search_instruments", err)
	}
	segmentStr, err := optString(args, "exchange_segment", "")
	if err != nil {
		return s.toolError("search_instruments", err)
	}
	if segmentStr != "" && !models.ExchangeSegment(segmentStr).Valid() {
		return s.toolError("search_instruments", &models.ValidationError{
			Field: "exchange_segment", Message: "invalid exchange segment " + segmentStr,
		})
	}
	instrumentType, err := optString(args, "instrument_type", "")
	if err != nil {
		return s.toolError("search_instruments", err)
	}
	limit, err := optInt(args, "limit", 0)
	if err != nil {
		return s.toolError("search_instruments", err)
	}

	matches, err := s.instruments.Search(ctx, instruments.Query{
		Text:            text,
		ExchangeSegment: models.ExchangeSegment(segmentStr),
		InstrumentType:  instrumentType,
		Limit:           limit,
	})
	if err != nil {
		return s.toolError("search_instruments", err)
	}
	return jsonResult(matches)
}
