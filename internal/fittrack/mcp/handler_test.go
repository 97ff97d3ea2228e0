package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/2beens/fittrack/internal/fittrack"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// mockOpsService implements opsService for tests.
type mockOpsService struct {
	workoutOut   string
	workoutErr   error
	hydrationOut string
	hydrationErr error
	nutritionOut string
	nutritionErr error
	libraryOut   string
	libraryErr   error
	rehabOut     string
	rehabErr     error
}

func (m *mockOpsService) LogWorkout(ctx context.Context, in fittrack.LogWorkoutInput) (string, error) {
	return m.workoutOut, m.workoutErr
}

func (m *mockOpsService) CalculateHydration(ctx context.Context, in fittrack.CalculateHydrationInput) (string, error) {
	return m.hydrationOut, m.hydrationErr
}

func (m *mockOpsService) LogNutrition(ctx context.Context, in fittrack.LogNutritionInput) (string, error) {
	return m.nutritionOut, m.nutritionErr
}

func (m *mockOpsService) GetExerciseLibrary(ctx context.Context, in fittrack.GetExerciseLibraryInput) (string, error) {
	return m.libraryOut, m.libraryErr
}

func (m *mockOpsService) GetRehabProtocol(ctx context.Context, in fittrack.GetRehabProtocolInput) (string, error) {
	return m.rehabOut, m.rehabErr
}

func contentText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected 1 content, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content is not text: %T", res.Content[0])
	}
	return tc.Text
}

func TestHandler_LogWorkoutTool(t *testing.T) {
	t.Run("returns_result", func(t *testing.T) {
		want := "## Workout Logged ✅\n"
		h := NewHandler(&mockOpsService{workoutOut: want})
		fn := h.LogWorkoutTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, fittrack.LogWorkoutInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsError {
			t.Fatalf("unexpected IsError")
		}
		if got := contentText(t, res); got != want {
			t.Fatalf("content text = %q, want %q", got, want)
		}
	})

	t.Run("returns_error_result", func(t *testing.T) {
		h := NewHandler(&mockOpsService{workoutErr: errors.New("boom")})
		fn := h.LogWorkoutTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, fittrack.LogWorkoutInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
		if got := contentText(t, res); got != "Error logging workout: boom" {
			t.Fatalf("content text = %q", got)
		}
	})
}

func TestHandler_CalculateHydrationTool(t *testing.T) {
	t.Run("returns_result", func(t *testing.T) {
		want := "## Hydration Protocol 💧\n"
		h := NewHandler(&mockOpsService{hydrationOut: want})
		fn := h.CalculateHydrationTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, fittrack.CalculateHydrationInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := contentText(t, res); got != want {
			t.Fatalf("content text = %q, want %q", got, want)
		}
	})

	t.Run("returns_error_result", func(t *testing.T) {
		h := NewHandler(&mockOpsService{hydrationErr: errors.New("boom")})
		fn := h.CalculateHydrationTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, fittrack.CalculateHydrationInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
		if got := contentText(t, res); got != "Error calculating hydration: boom" {
			t.Fatalf("content text = %q", got)
		}
	})
}

func TestHandler_LogNutritionTool(t *testing.T) {
	t.Run("returns_error_result", func(t *testing.T) {
		h := NewHandler(&mockOpsService{nutritionErr: errors.New("boom")})
		fn := h.LogNutritionTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, fittrack.LogNutritionInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
		if got := contentText(t, res); got != "Error logging nutrition: boom" {
			t.Fatalf("content text = %q", got)
		}
	})
}

func TestHandler_GetExerciseLibraryTool(t *testing.T) {
	t.Run("returns_result", func(t *testing.T) {
		want := "# AC-Joint Safe Exercise Library 💪\n"
		h := NewHandler(&mockOpsService{libraryOut: want})
		fn := h.GetExerciseLibraryTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, fittrack.GetExerciseLibraryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := contentText(t, res); got != want {
			t.Fatalf("content text = %q, want %q", got, want)
		}
	})

	t.Run("returns_error_result", func(t *testing.T) {
		h := NewHandler(&mockOpsService{libraryErr: errors.New("boom")})
		fn := h.GetExerciseLibraryTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, fittrack.GetExerciseLibraryInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := contentText(t, res); got != "Error retrieving exercise library: boom" {
			t.Fatalf("content text = %q", got)
		}
	})
}

func TestHandler_GetRehabProtocolTool(t *testing.T) {
	t.Run("returns_result", func(t *testing.T) {
		want := "# AC Joint Arthritis Rehabilitation\n"
		h := NewHandler(&mockOpsService{rehabOut: want})
		fn := h.GetRehabProtocolTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, fittrack.GetRehabProtocolInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := contentText(t, res); got != want {
			t.Fatalf("content text = %q, want %q", got, want)
		}
	})

	t.Run("returns_error_result", func(t *testing.T) {
		h := NewHandler(&mockOpsService{rehabErr: errors.New("boom")})
		fn := h.GetRehabProtocolTool()
		res, _, err := fn(context.Background(), &mcp.CallToolRequest{}, fittrack.GetRehabProtocolInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsError {
			t.Fatalf("expected IsError")
		}
		if got := contentText(t, res); got != "Error retrieving rehab protocol: boom" {
			t.Fatalf("content text = %q", got)
		}
	})
}
