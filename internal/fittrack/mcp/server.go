package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the five fittrack tools: log_workout,
// calculate_hydration, log_nutrition, get_exercise_library, get_rehab_protocol.
// Used by the main backend when mounting MCP at /mcp (internal/server) and by
// the stdio cmd.
func NewServer(service opsService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fittrack",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a workout session with AC-joint safety validation and RPE tracking. Records exercise, sets, reps, weight and RPE, checks the exercise against AC joint arthritis precautions, and suggests safe alternatives for unsafe movements.",
	}, h.LogWorkoutTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "calculate_hydration",
		Description: "Calculate hydration and electrolyte needs for hyperhidrosis. Estimates fluid loss from workout duration, intensity (RPE), temperature and personal sweat rate, with sodium targets and replacement timing.",
	}, h.CalculateHydrationTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "log_nutrition",
		Description: "Log a meal with automatic late-meal warnings (9pm-6am guardrail). Records meal time, description and optional macros (protein, carbs, fat, calories).",
	}, h.LogNutritionTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_library",
		Description: "Retrieve the AC-joint safe exercise library, organized by category (pressing, pulling, lower body, serratus/lower trap, core). Optional filters: category, search term. Also lists exercises to avoid.",
	}, h.GetExerciseLibraryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_rehab_protocol",
		Description: "Retrieve evidence-based PT/rehab protocols for: AC joint arthritis, bicep tendonitis, cervical spine arthritis, scapular winging, post-ankle surgery, post-meniscus surgery. Optional phase number (1-4) for a detailed single-phase view.",
	}, h.GetRehabProtocolTool())

	return s
}
