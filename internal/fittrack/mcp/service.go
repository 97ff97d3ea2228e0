package mcp

import (
	"context"

	"github.com/2beens/fittrack/internal/fittrack"
)

// opsService provides the five fittrack operations (for dependency injection
// and testing). *fittrack.Service implements it.
type opsService interface {
	LogWorkout(ctx context.Context, in fittrack.LogWorkoutInput) (string, error)
	CalculateHydration(ctx context.Context, in fittrack.CalculateHydrationInput) (string, error)
	LogNutrition(ctx context.Context, in fittrack.LogNutritionInput) (string, error)
	GetExerciseLibrary(ctx context.Context, in fittrack.GetExerciseLibraryInput) (string, error)
	GetRehabProtocol(ctx context.Context, in fittrack.GetRehabProtocolInput) (string, error)
}
