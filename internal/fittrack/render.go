package fittrack

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/fittrack/internal/fittrack/rehab"
)

// acJointSafeAlternatives is suggested instead of an unsafe exercise.
var acJointSafeAlternatives = []string{
	"Landmine Press",
	"Neutral Grip DB Press (scapular plane)",
	"Floor Press",
	"Face Pulls / Cable Rows",
}

// libraryConstraints describes the constraints the library applies.
var libraryConstraints = []string{
	"Standing/self-stabilizing lifts preferred",
	"AC-joint safe pressing (scapular plane, neutral grip)",
	"Serratus anterior & lower trapezius emphasis",
	"Landmine exercises approved",
	"RPE-based progression (6-10 scale)",
}

// WorkoutResponse is the structured log_workout result.
type WorkoutResponse struct {
	Status           string           `json:"status"`
	Workout          WorkoutEntry     `json:"workout"`
	SafetyAssessment SafetyAssessment `json:"safety_assessment"`
	Alternatives     []string         `json:"ac_joint_safe_alternatives,omitempty"`
}

// HydrationResponse is the structured calculate_hydration result: the derived
// figures plus the echoed request parameters, so no information is lost
// relative to the human-readable rendering.
type HydrationResponse struct {
	WorkoutDurationMinutes int            `json:"workout_duration_minutes"`
	Intensity              IntensityLevel `json:"intensity"`
	AmbientTempF           float64        `json:"ambient_temp_f"`
	HydrationResult
	DailySodiumGoal string `json:"daily_sodium_goal"`
}

// NutritionResponse is the structured log_nutrition result.
type NutritionResponse struct {
	Status          string    `json:"status"`
	Meal            MealEntry `json:"meal"`
	LateMealWarning bool      `json:"late_meal_warning"`
	WarningMessage  *string   `json:"warning_message"`
}

// LibraryResponse is the structured get_exercise_library result.
type LibraryResponse struct {
	TrainingConstraints []string         `json:"training_constraints"`
	Exercises           []LibrarySection `json:"exercises"`
	UnsafeExercises     []string         `json:"unsafe_exercises"`
}

// RehabPhaseResponse is the structured single-phase get_rehab_protocol result.
type RehabPhaseResponse struct {
	Condition string      `json:"condition"`
	Phase     rehab.Phase `json:"phase"`
}

func renderJSON(v any) (string, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode response: %w", err)
	}
	return string(raw), nil
}

// formatFloat renders a float the shortest way ("2.5", "185").
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func renderWorkout(resp WorkoutResponse, format ResponseFormat) (string, error) {
	if format == FormatJSON {
		return renderJSON(resp)
	}

	var out []string
	out = append(out, "## Workout Logged ✅\n")
	out = append(out, fmt.Sprintf("**Exercise:** %s", resp.Workout.Exercise))
	out = append(out, fmt.Sprintf("**Volume:** %d sets × %d reps", resp.Workout.Sets, resp.Workout.Reps))
	if resp.Workout.WeightLbs != nil && *resp.Workout.WeightLbs > 0 {
		out = append(out, fmt.Sprintf("**Load:** %s lbs", formatFloat(*resp.Workout.WeightLbs)))
	}
	out = append(out, fmt.Sprintf("**Intensity:** %s", resp.Workout.RPE))
	if resp.Workout.Notes != "" {
		out = append(out, fmt.Sprintf("**Notes:** %s", resp.Workout.Notes))
	}

	out = append(out, "\n### AC Joint Safety Assessment")
	out = append(out, resp.SafetyAssessment.Reason)

	if resp.SafetyAssessment.Verdict() == "unsafe" {
		out = append(out, "\n**💡 AC-Joint Safe Alternatives:**")
		for _, alternative := range resp.Alternatives {
			out = append(out, fmt.Sprintf("  - %s", alternative))
		}
	}

	return strings.Join(out, "\n"), nil
}

func renderHydration(resp HydrationResponse, format ResponseFormat) (string, error) {
	if format == FormatJSON {
		return renderJSON(resp)
	}

	var out []string
	out = append(out, "## Hydration Protocol 💧\n")
	out = append(out, fmt.Sprintf("**Workout Duration:** %d minutes", resp.WorkoutDurationMinutes))
	out = append(out, fmt.Sprintf("**Intensity:** %s", resp.Intensity))
	out = append(out, fmt.Sprintf("**Temperature:** %s°F", formatFloat(resp.AmbientTempF)))
	out = append(out, fmt.Sprintf("**Adjusted Sweat Rate:** %s lbs/hour\n", formatFloat(resp.SweatRateAdjusted)))

	out = append(out, "### Fluid Loss Estimate")
	out = append(out, fmt.Sprintf("- **Total Loss:** %s lbs (%s oz)",
		formatFloat(resp.FluidLossLbs), formatFloat(resp.FluidLossOz)))
	out = append(out, fmt.Sprintf("- **Replace:** %s oz", resp.ReplaceOzRange))
	out = append(out, fmt.Sprintf("- **Timing:** %s\n", resp.Timing))

	out = append(out, "### Sodium Target")
	out = append(out, fmt.Sprintf("- **Sodium:** %d mg during/after workout", resp.SodiumMg))
	out = append(out, fmt.Sprintf("- **Daily Goal (training days):** %s\n", resp.DailySodiumGoal))

	out = append(out, "### Hydration Tips")
	for _, tip := range resp.Tips {
		out = append(out, fmt.Sprintf("  - %s", tip))
	}

	return strings.Join(out, "\n"), nil
}

func renderNutrition(resp NutritionResponse, format ResponseFormat) (string, error) {
	if format == FormatJSON {
		return renderJSON(resp)
	}

	var out []string
	out = append(out, "## Meal Logged 🍽️\n")
	out = append(out, fmt.Sprintf("**Time:** %s", resp.Meal.MealTime))
	out = append(out, fmt.Sprintf("**Meal:** %s", resp.Meal.Description))

	meal := resp.Meal
	if intPresent(meal.ProteinG) || intPresent(meal.CarbsG) || intPresent(meal.FatG) {
		out = append(out, "\n**Macros:**")
		if intPresent(meal.ProteinG) {
			out = append(out, fmt.Sprintf("  - Protein: %dg", *meal.ProteinG))
		}
		if intPresent(meal.CarbsG) {
			out = append(out, fmt.Sprintf("  - Carbs: %dg", *meal.CarbsG))
		}
		if intPresent(meal.FatG) {
			out = append(out, fmt.Sprintf("  - Fat: %dg", *meal.FatG))
		}
		if intPresent(meal.Calories) {
			out = append(out, fmt.Sprintf("  - **Total:** %d cal", *meal.Calories))
		}
	}

	if resp.WarningMessage != nil {
		out = append(out, fmt.Sprintf("\n%s", *resp.WarningMessage))
	}

	return strings.Join(out, "\n"), nil
}

func intPresent(v *int) bool {
	return v != nil && *v > 0
}

func renderLibrary(resp LibraryResponse, format ResponseFormat) (string, error) {
	if format == FormatJSON {
		return renderJSON(resp)
	}

	var out []string
	out = append(out, "# AC-Joint Safe Exercise Library 💪\n")
	out = append(out, "**Training Constraints Applied:**")
	for _, constraint := range resp.TrainingConstraints {
		out = append(out, fmt.Sprintf("  - %s", constraint))
	}
	out = append(out, "")

	for _, section := range resp.Exercises {
		out = append(out, fmt.Sprintf("## %s", titleCase(section.Category)))
		for _, exercise := range section.Exercises {
			out = append(out, fmt.Sprintf("  - %s", exercise))
		}
		out = append(out, "")
	}

	out = append(out, "### ❌ Exercises to AVOID:")
	for _, unsafe := range resp.UnsafeExercises {
		out = append(out, fmt.Sprintf("  - %s", unsafe))
	}

	return strings.Join(out, "\n"), nil
}

// titleCase turns a category key into a section title ("lower_body_standing"
// -> "Lower Body Standing").
func titleCase(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func renderRehabProtocol(protocol rehab.Protocol, format ResponseFormat) (string, error) {
	if format == FormatJSON {
		return renderJSON(protocol)
	}

	var out []string
	out = append(out, fmt.Sprintf("# %s\n", protocol.Name))
	out = append(out, fmt.Sprintf("**Overview:** %s\n", protocol.Overview))

	// abbreviated view: per phase, goals plus the first 3 exercises
	for _, phase := range protocol.Phases {
		out = append(out, fmt.Sprintf("\n## Phase %d: %s", phase.Phase, phase.Name))
		out = append(out, fmt.Sprintf("**Goals:** %s", strings.Join(phase.Goals, ", ")))
		out = append(out, "\n**Key Exercises:**")
		shown := phase.Exercises
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for _, exercise := range shown {
			out = append(out, fmt.Sprintf("  - %s (%s sets x %s)", exercise.Name, exercise.Sets, exercise.Reps))
		}
	}

	out = append(out, "\n## Key Principles")
	for _, principle := range protocol.KeyPrinciples {
		out = append(out, fmt.Sprintf("- %s", principle))
	}

	return strings.Join(out, "\n"), nil
}

func renderRehabPhase(protocol rehab.Protocol, phase rehab.Phase, format ResponseFormat) (string, error) {
	if format == FormatJSON {
		return renderJSON(RehabPhaseResponse{
			Condition: protocol.Name,
			Phase:     phase,
		})
	}

	var out []string
	out = append(out, fmt.Sprintf("# %s\n", protocol.Name))
	out = append(out, fmt.Sprintf("**Overview:** %s\n", protocol.Overview))
	out = append(out, fmt.Sprintf("## Phase %d: %s\n", phase.Phase, phase.Name))

	goals := make([]string, 0, len(phase.Goals))
	for _, goal := range phase.Goals {
		goals = append(goals, fmt.Sprintf("  - %s", goal))
	}
	out = append(out, "**Goals:**\n"+strings.Join(goals, "\n"))

	out = append(out, "\n**Exercises:**\n")
	for _, exercise := range phase.Exercises {
		out = append(out, fmt.Sprintf("- **%s**", exercise.Name))
		out = append(out, fmt.Sprintf("  - Sets: %s | Reps: %s | Frequency: %s", exercise.Sets, exercise.Reps, exercise.Frequency))
		out = append(out, fmt.Sprintf("  - Notes: %s", exercise.Notes))
	}

	restrictions := make([]string, 0, len(phase.Restrictions))
	for _, restriction := range phase.Restrictions {
		restrictions = append(restrictions, fmt.Sprintf("  - %s", restriction))
	}
	out = append(out, "\n**Restrictions:**\n"+strings.Join(restrictions, "\n"))

	return strings.Join(out, "\n"), nil
}
