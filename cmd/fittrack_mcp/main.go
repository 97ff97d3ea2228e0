// Package main runs the fittrack MCP server over stdio (for local Cursor use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP,
// so you can use either: stdio (this cmd) or the backend URL (no extra deploy).
package main

import (
	"context"
	"flag"
	"log"

	"github.com/2beens/fittrack/internal/fittrack"
	fittrackmcp "github.com/2beens/fittrack/internal/fittrack/mcp"
	"github.com/2beens/fittrack/internal/telemetry/metrics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	flag.Parse()

	// metrics are local only here, there is no metrics server over stdio
	metricsManager := metrics.NewManager("fittrack", "mcp", prometheus.NewRegistry())
	service := fittrack.NewService(metricsManager)
	server := fittrackmcp.NewServer(service)

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
