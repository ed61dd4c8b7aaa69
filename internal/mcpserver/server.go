// Package mcpserver exposes the Dhan API as Model Context Protocol tools
// over standard streams.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/vikkysarswat/dhan-mcp-server/internal/dhan"
	"github.com/vikkysarswat/dhan-mcp-server/internal/instruments"
)

// Version is the server version reported during MCP initialization.
const Version = "0.1.0"

// Server wires the API client and instrument master into an MCP server.
type Server struct {
	api         *dhan.Client
	instruments *instruments.Service
	log         zerolog.Logger
	mcp         *server.MCPServer
}

// New builds the MCP server and registers every tool and resource.
func New(api *dhan.Client, inst *instruments.Service, log zerolog.Logger) *Server {
	s := &Server{
		api:         api,
		instruments: inst,
		log:         log,
	}

	s.mcp = server.NewMCPServer(
		"dhan-mcp-server",
		Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)

	s.registerAccountTools()
	s.registerOrderTools()
	s.registerTradeTools()
	s.registerPortfolioTools()
	s.registerMarketTools()
	s.registerChartTools()
	s.registerInstrumentTools()
	s.registerResources()

	return s
}

// Serve runs the stdio transport until the client disconnects.
func (s *Server) Serve() error {
	s.log.Info().Str("version", Version).Msg("mcp server ready")
	return server.ServeStdio(s.mcp)
}
