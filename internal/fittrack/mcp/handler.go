package mcp

import (
	"context"

	"github.com/2beens/fittrack/internal/fittrack"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the ops
// service, formats the MCP result. One tool per operation, each returns one
// text content.
type Handler struct {
	service opsService
}

// NewHandler builds a handler with the given service.
func NewHandler(service opsService) *Handler {
	return &Handler{
		service: service,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(op fittrack.Operation, err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fittrack.OpErrorMessage(op, err)}},
		IsError: true,
	}
}

// LogWorkoutTool returns the MCP tool handler for log_workout.
func (h *Handler) LogWorkoutTool() func(context.Context, *mcp.CallToolRequest, fittrack.LogWorkoutInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in fittrack.LogWorkoutInput) (*mcp.CallToolResult, any, error) {
		out, err := h.service.LogWorkout(ctx, in)
		if err != nil {
			return errorResult(fittrack.OpLogWorkout, err), nil, nil
		}
		return textResult(out), nil, nil
	}
}

// CalculateHydrationTool returns the MCP tool handler for calculate_hydration.
func (h *Handler) CalculateHydrationTool() func(context.Context, *mcp.CallToolRequest, fittrack.CalculateHydrationInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in fittrack.CalculateHydrationInput) (*mcp.CallToolResult, any, error) {
		out, err := h.service.CalculateHydration(ctx, in)
		if err != nil {
			return errorResult(fittrack.OpCalculateHydration, err), nil, nil
		}
		return textResult(out), nil, nil
	}
}

// LogNutritionTool returns the MCP tool handler for log_nutrition.
func (h *Handler) LogNutritionTool() func(context.Context, *mcp.CallToolRequest, fittrack.LogNutritionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in fittrack.LogNutritionInput) (*mcp.CallToolResult, any, error) {
		out, err := h.service.LogNutrition(ctx, in)
		if err != nil {
			return errorResult(fittrack.OpLogNutrition, err), nil, nil
		}
		return textResult(out), nil, nil
	}
}

// GetExerciseLibraryTool returns the MCP tool handler for get_exercise_library.
func (h *Handler) GetExerciseLibraryTool() func(context.Context, *mcp.CallToolRequest, fittrack.GetExerciseLibraryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in fittrack.GetExerciseLibraryInput) (*mcp.CallToolResult, any, error) {
		out, err := h.service.GetExerciseLibrary(ctx, in)
		if err != nil {
			return errorResult(fittrack.OpGetExerciseLibrary, err), nil, nil
		}
		return textResult(out), nil, nil
	}
}

// GetRehabProtocolTool returns the MCP tool handler for get_rehab_protocol.
func (h *Handler) GetRehabProtocolTool() func(context.Context, *mcp.CallToolRequest, fittrack.GetRehabProtocolInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in fittrack.GetRehabProtocolInput) (*mcp.CallToolResult, any, error) {
		out, err := h.service.GetRehabProtocol(ctx, in)
		if err != nil {
			return errorResult(fittrack.OpGetRehabProtocol, err), nil, nil
		}
		return textResult(out), nil, nil
	}
}
