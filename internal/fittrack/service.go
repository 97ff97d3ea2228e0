package fittrack

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/2beens/fittrack/internal/fittrack/rehab"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Operation is one of the five named operations. The set is closed: MCP tool
// registration and REST routes both enumerate exactly these.
type Operation string

const (
	OpLogWorkout         Operation = "log_workout"
	OpCalculateHydration Operation = "calculate_hydration"
	OpLogNutrition       Operation = "log_nutrition"
	OpGetExerciseLibrary Operation = "get_exercise_library"
	OpGetRehabProtocol   Operation = "get_rehab_protocol"
)

// Operations returns the closed operation set, in a fixed order.
func Operations() []Operation {
	return []Operation{
		OpLogWorkout,
		OpCalculateHydration,
		OpLogNutrition,
		OpGetExerciseLibrary,
		OpGetRehabProtocol,
	}
}

// Service implements the five operations: validation, computation, formatting.
// It holds only immutable tables and telemetry handles, requests share no
// mutable state, so it is safe for concurrent use by hosts.
type Service struct {
	metrics *metrics.Manager
	now     func() time.Time
	newID   func() uuid.UUID
}

func NewService(metricsManager *metrics.Manager) *Service {
	return &Service{
		metrics: metricsManager,
		now:     time.Now,
		newID:   uuid.New,
	}
}

// run wraps one operation: tracing span, panic recovery at the operation
// boundary, per-op metrics. A panic becomes a plain error naming the
// operation, a failed call never affects the next one.
func (s *Service) run(ctx context.Context, op Operation, fn func(ctx context.Context) (string, error)) (out string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "fittrack."+string(op))
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("operation %s panic: %v\n%s", op, r, debug.Stack())
			err = fmt.Errorf("internal failure in %s: %v", op, r)
		}
		s.countOp(op, err)
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return fn(ctx)
}

func (s *Service) countOp(op Operation, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.metrics.CounterOps.WithLabelValues(string(op), outcome).Inc()
}

// LogWorkout validates the entry, classifies the exercise for AC joint safety
// and returns a confirmation. Nothing is persisted.
func (s *Service) LogWorkout(ctx context.Context, in LogWorkoutInput) (string, error) {
	return s.run(ctx, OpLogWorkout, func(ctx context.Context) (string, error) {
		in.Normalize()
		if err := Validate(&in); err != nil {
			return "", err
		}

		assessment := CheckACJointSafety(in.ExerciseName)
		if s.metrics != nil && assessment.Verdict() == "unsafe" {
			s.metrics.CounterUnsafeExercises.Inc()
		}

		resp := WorkoutResponse{
			Status: "logged",
			Workout: WorkoutEntry{
				ID:          s.newID(),
				Timestamp:   s.now().Format(time.RFC3339),
				Exercise:    in.ExerciseName,
				Sets:        in.Sets,
				Reps:        in.Reps,
				WeightLbs:   in.WeightLbs,
				RPE:         in.RPE,
				Notes:       in.Notes,
				ACJointSafe: assessment.Safe,
			},
			SafetyAssessment: assessment,
		}
		if assessment.Verdict() == "unsafe" {
			resp.Alternatives = acJointSafeAlternatives
		}
		return renderWorkout(resp, in.ResponseFormat)
	})
}

// CalculateHydration computes the hydration protocol for one workout.
func (s *Service) CalculateHydration(ctx context.Context, in CalculateHydrationInput) (string, error) {
	return s.run(ctx, OpCalculateHydration, func(ctx context.Context) (string, error) {
		in.Normalize()
		if err := Validate(&in); err != nil {
			return "", err
		}

		result := CalculateHydration(
			in.WorkoutDurationMinutes,
			in.Intensity,
			in.AmbientTempF,
			in.SweatRateLbsPerHour,
		)
		return renderHydration(HydrationResponse{
			WorkoutDurationMinutes: in.WorkoutDurationMinutes,
			Intensity:              in.Intensity,
			AmbientTempF:           in.AmbientTempF,
			HydrationResult:        result,
			DailySodiumGoal:        "3,000-5,000 mg",
		}, in.ResponseFormat)
	})
}

// LogNutrition validates the meal and applies the late-meal guardrail.
func (s *Service) LogNutrition(ctx context.Context, in LogNutritionInput) (string, error) {
	return s.run(ctx, OpLogNutrition, func(ctx context.Context) (string, error) {
		in.Normalize()
		if err := Validate(&in); err != nil {
			return "", err
		}

		warning, triggered := LateMealWarning(in.MealTime)
		if s.metrics != nil && triggered {
			s.metrics.CounterLateMealWarnings.Inc()
		}

		resp := NutritionResponse{
			Status: "logged",
			Meal: MealEntry{
				ID:          s.newID(),
				Timestamp:   s.now().Format(time.RFC3339),
				MealTime:    in.MealTime,
				Description: in.MealDescription,
				ProteinG:    in.ProteinG,
				CarbsG:      in.CarbsG,
				FatG:        in.FatG,
				Calories:    in.Calories,
			},
			LateMealWarning: triggered,
		}
		if triggered {
			resp.WarningMessage = &warning
		}
		return renderNutrition(resp, in.ResponseFormat)
	})
}

// GetExerciseLibrary returns the AC-joint safe library view.
func (s *Service) GetExerciseLibrary(ctx context.Context, in GetExerciseLibraryInput) (string, error) {
	return s.run(ctx, OpGetExerciseLibrary, func(ctx context.Context) (string, error) {
		in.Normalize()
		if err := Validate(&in); err != nil {
			return "", err
		}

		result := FilterLibrary(in.Category, in.SearchTerm)
		return renderLibrary(LibraryResponse{
			TrainingConstraints: libraryConstraints,
			Exercises:           result.Sections,
			UnsafeExercises:     result.Unsafe,
		}, in.ResponseFormat)
	})
}

// GetRehabProtocol returns a full protocol or one phase of it.
func (s *Service) GetRehabProtocol(ctx context.Context, in GetRehabProtocolInput) (string, error) {
	return s.run(ctx, OpGetRehabProtocol, func(ctx context.Context) (string, error) {
		in.Normalize()
		if err := Validate(&in); err != nil {
			return "", err
		}

		protocol, err := rehab.Get(in.Condition)
		if err != nil {
			return "", err
		}

		if in.Phase == nil {
			return renderRehabProtocol(protocol, in.ResponseFormat)
		}

		phase, err := rehab.GetPhase(in.Condition, *in.Phase)
		if err != nil {
			return "", err
		}
		return renderRehabPhase(protocol, phase, in.ResponseFormat)
	})
}

// Dispatch routes a raw JSON input to the named operation. Used by the
// generic REST dispatch route, the typed hosts call the methods directly.
func (s *Service) Dispatch(ctx context.Context, op Operation, raw []byte) (string, error) {
	switch op {
	case OpLogWorkout:
		var in LogWorkoutInput
		if err := json.Unmarshal(raw, &in); err != nil {
			return "", fmt.Errorf("decode %s input: %w", op, err)
		}
		return s.LogWorkout(ctx, in)
	case OpCalculateHydration:
		var in CalculateHydrationInput
		if err := json.Unmarshal(raw, &in); err != nil {
			return "", fmt.Errorf("decode %s input: %w", op, err)
		}
		return s.CalculateHydration(ctx, in)
	case OpLogNutrition:
		var in LogNutritionInput
		if err := json.Unmarshal(raw, &in); err != nil {
			return "", fmt.Errorf("decode %s input: %w", op, err)
		}
		return s.LogNutrition(ctx, in)
	case OpGetExerciseLibrary:
		var in GetExerciseLibraryInput
		if err := json.Unmarshal(raw, &in); err != nil {
			return "", fmt.Errorf("decode %s input: %w", op, err)
		}
		return s.GetExerciseLibrary(ctx, in)
	case OpGetRehabProtocol:
		var in GetRehabProtocolInput
		if err := json.Unmarshal(raw, &in); err != nil {
			return "", fmt.Errorf("decode %s input: %w", op, err)
		}
		return s.GetRehabProtocol(ctx, in)
	default:
		return "", fmt.Errorf("unknown operation: %s", op)
	}
}
