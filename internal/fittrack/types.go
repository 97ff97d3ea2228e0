package fittrack

import (
	"github.com/google/uuid"
)

// IntensityLevel is an RPE-based workout intensity (6-10 scale).
type IntensityLevel string

const (
	RPE6  IntensityLevel = "6 - Very light"
	RPE7  IntensityLevel = "7 - Light"
	RPE8  IntensityLevel = "8 - Moderate"
	RPE9  IntensityLevel = "9 - Hard"
	RPE10 IntensityLevel = "10 - Maximum effort"
)

// intensityMultipliers drives the hydration calculation. The multiplier is tied
// to the level constant, never parsed out of the label text.
var intensityMultipliers = map[IntensityLevel]float64{
	RPE6:  0.7,
	RPE7:  0.8,
	RPE8:  1.0,
	RPE9:  1.3,
	RPE10: 1.5,
}

// IntensityLevels returns all RPE levels in ascending order.
func IntensityLevels() []IntensityLevel {
	return []IntensityLevel{RPE6, RPE7, RPE8, RPE9, RPE10}
}

func (l IntensityLevel) Valid() bool {
	_, ok := intensityMultipliers[l]
	return ok
}

// Multiplier returns the sweat rate multiplier for the level, 1.0 for unknown levels.
func (l IntensityLevel) Multiplier() float64 {
	if m, ok := intensityMultipliers[l]; ok {
		return m
	}
	return 1.0
}

// ResponseFormat selects between machine-parseable and human-readable output.
type ResponseFormat string

const (
	FormatMarkdown ResponseFormat = "markdown"
	FormatJSON     ResponseFormat = "json"
)

func (f ResponseFormat) Valid() bool {
	return f == FormatMarkdown || f == FormatJSON
}

// ExerciseCategory filters the exercise library.
type ExerciseCategory string

const (
	CategoryPressing          ExerciseCategory = "pressing"
	CategoryPulling           ExerciseCategory = "pulling"
	CategoryLowerBody         ExerciseCategory = "lower_body"
	CategorySerratusLowerTrap ExerciseCategory = "serratus_lower_trap"
	CategoryCore              ExerciseCategory = "core"
	CategoryRehab             ExerciseCategory = "rehab"
)

func (c ExerciseCategory) Valid() bool {
	switch c {
	case CategoryPressing, CategoryPulling, CategoryLowerBody,
		CategorySerratusLowerTrap, CategoryCore, CategoryRehab:
		return true
	}
	return false
}

// LogWorkoutInput is the input for the log_workout operation.
type LogWorkoutInput struct {
	ExerciseName   string         `json:"exercise_name" jsonschema:"Name of exercise (e.g. 'Landmine Press', 'Face Pulls')" validate:"required,min=1"`
	Sets           int            `json:"sets" jsonschema:"Number of sets completed (1-10)" validate:"gte=1,lte=10"`
	Reps           int            `json:"reps" jsonschema:"Reps per set (1-50)" validate:"gte=1,lte=50"`
	WeightLbs      *float64       `json:"weight_lbs,omitempty" jsonschema:"Weight used in pounds" validate:"omitempty,gte=0"`
	RPE            IntensityLevel `json:"rpe" jsonschema:"Rate of Perceived Exertion (6-10 scale)" validate:"rpe"`
	Notes          string         `json:"notes,omitempty" jsonschema:"Additional notes (form checks, pain, etc.)" validate:"max=500"`
	ResponseFormat ResponseFormat `json:"response_format,omitempty" jsonschema:"Output format: markdown or json" validate:"response_format"`
}

// CalculateHydrationInput is the input for the calculate_hydration operation.
type CalculateHydrationInput struct {
	WorkoutDurationMinutes int            `json:"workout_duration_minutes" jsonschema:"Workout duration in minutes (15-240)" validate:"gte=15,lte=240"`
	Intensity              IntensityLevel `json:"intensity" jsonschema:"Workout intensity (RPE scale)" validate:"rpe"`
	AmbientTempF           float64        `json:"ambient_temp_f,omitempty" jsonschema:"Ambient temperature in Fahrenheit (40-110), default 72" validate:"gte=40,lte=110"`
	SweatRateLbsPerHour    float64        `json:"sweat_rate_lbs_per_hour,omitempty" jsonschema:"Measured sweat rate (lbs/hour, 1.0-5.0). Default 2.5 for heavy sweaters" validate:"gte=1.0,lte=5.0"`
	ResponseFormat         ResponseFormat `json:"response_format,omitempty" jsonschema:"Output format: markdown or json" validate:"response_format"`
}

// LogNutritionInput is the input for the log_nutrition operation.
type LogNutritionInput struct {
	MealTime        string         `json:"meal_time" jsonschema:"Meal time in HH:MM format (24-hour)" validate:"hhmm"`
	MealDescription string         `json:"meal_description" jsonschema:"Brief meal description" validate:"required,min=1,max=200"`
	ProteinG        *int           `json:"protein_g,omitempty" jsonschema:"Protein in grams" validate:"omitempty,gte=0,lte=300"`
	CarbsG          *int           `json:"carbs_g,omitempty" jsonschema:"Carbs in grams" validate:"omitempty,gte=0,lte=500"`
	FatG            *int           `json:"fat_g,omitempty" jsonschema:"Fat in grams" validate:"omitempty,gte=0,lte=200"`
	Calories        *int           `json:"calories,omitempty" jsonschema:"Total calories" validate:"omitempty,gte=0,lte=5000"`
	ResponseFormat  ResponseFormat `json:"response_format,omitempty" jsonschema:"Output format: markdown or json" validate:"response_format"`
}

// GetExerciseLibraryInput is the input for the get_exercise_library operation.
type GetExerciseLibraryInput struct {
	Category       ExerciseCategory `json:"category,omitempty" jsonschema:"Filter by exercise category" validate:"omitempty,exercise_category"`
	SearchTerm     string           `json:"search_term,omitempty" jsonschema:"Search for specific exercises" validate:"max=50"`
	ResponseFormat ResponseFormat   `json:"response_format,omitempty" jsonschema:"Output format: markdown or json" validate:"response_format"`
}

// GetRehabProtocolInput is the input for the get_rehab_protocol operation.
// The condition is deliberately not validated against a closed enum here: the
// rehab store owns membership and reports unknown conditions as not-found.
type GetRehabProtocolInput struct {
	Condition      string         `json:"condition" jsonschema:"Rehab condition to get protocol for (e.g. ac_joint_arthritis)" validate:"required,min=1"`
	Phase          *int           `json:"phase,omitempty" jsonschema:"Specific phase number (1-4)" validate:"omitempty,gte=1,lte=4"`
	ResponseFormat ResponseFormat `json:"response_format,omitempty" jsonschema:"Output format: markdown or json" validate:"response_format"`
}

// WorkoutEntry is one logged workout set group. Transient: lives only for the
// duration of a single response.
type WorkoutEntry struct {
	ID          uuid.UUID      `json:"id"`
	Timestamp   string         `json:"timestamp"`
	Exercise    string         `json:"exercise"`
	Sets        int            `json:"sets"`
	Reps        int            `json:"reps"`
	WeightLbs   *float64       `json:"weight_lbs"`
	RPE         IntensityLevel `json:"rpe"`
	Notes       string         `json:"notes,omitempty"`
	ACJointSafe *bool          `json:"ac_joint_safe"`
}

// MealEntry is one logged meal. Transient, same as WorkoutEntry.
type MealEntry struct {
	ID          uuid.UUID `json:"id"`
	Timestamp   string    `json:"timestamp"`
	MealTime    string    `json:"meal_time"`
	Description string    `json:"description"`
	ProteinG    *int      `json:"protein_g"`
	CarbsG      *int      `json:"carbs_g"`
	FatG        *int      `json:"fat_g"`
	Calories    *int      `json:"calories"`
}
