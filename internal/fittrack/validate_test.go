package fittrack

import (
	"errors"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWorkoutInput() LogWorkoutInput {
	return LogWorkoutInput{
		ExerciseName:   "Landmine Press",
		Sets:           3,
		Reps:           8,
		RPE:            RPE8,
		ResponseFormat: FormatMarkdown,
	}
}

func requireValidationError(t *testing.T, err error, field string, code ValidationCode) {
	t.Helper()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, field, vErr.Field)
	assert.Equal(t, code, vErr.Code)
}

func TestValidate_Workout_SetsBounds(t *testing.T) {
	for _, sets := range []int{1, 10} {
		in := validWorkoutInput()
		in.Sets = sets
		assert.NoError(t, Validate(&in), "sets=%d", sets)
	}

	for _, sets := range []int{0, 11} {
		in := validWorkoutInput()
		in.Sets = sets
		requireValidationError(t, Validate(&in), "sets", CodeOutOfRange)
	}
}

func TestValidate_Workout_RepsBounds(t *testing.T) {
	for _, reps := range []int{0, 51} {
		in := validWorkoutInput()
		in.Reps = reps
		requireValidationError(t, Validate(&in), "reps", CodeOutOfRange)
	}
}

func TestValidate_Workout_InvalidRPE(t *testing.T) {
	in := validWorkoutInput()
	in.RPE = "8"
	requireValidationError(t, Validate(&in), "rpe", CodeInvalidEnum)
}

func TestValidate_Workout_NameTrimmedToEmpty(t *testing.T) {
	in := validWorkoutInput()
	in.ExerciseName = "   "
	in.Normalize()
	assert.Empty(t, in.ExerciseName)
	requireValidationError(t, Validate(&in), "exercise_name", CodeOutOfRange)
}

func TestValidate_Workout_FirstFailureWins(t *testing.T) {
	// exercise_name comes before sets in field order, so it is the one reported
	in := validWorkoutInput()
	in.ExerciseName = ""
	in.Sets = 0
	requireValidationError(t, Validate(&in), "exercise_name", CodeOutOfRange)
}

func TestValidate_Workout_NegativeWeight(t *testing.T) {
	in := validWorkoutInput()
	weight := -10.0
	in.WeightLbs = &weight
	requireValidationError(t, Validate(&in), "weight_lbs", CodeOutOfRange)
}

func TestValidate_Workout_RandomizedValid(t *testing.T) {
	faker := gofakeit.New(0)
	for i := 0; i < 50; i++ {
		weight := faker.Float64Range(0, 500)
		in := LogWorkoutInput{
			ExerciseName: faker.RandomString([]string{"Landmine Press", "Face Pulls", "Goblet Squats"}),
			Sets:         faker.Number(1, 10),
			Reps:         faker.Number(1, 50),
			WeightLbs:    &weight,
			RPE:          IntensityLevels()[faker.Number(0, 4)],
			Notes:        faker.LetterN(uint(faker.Number(0, 500))),
		}
		in.Normalize()
		require.NoError(t, Validate(&in))
	}
}

func TestValidate_Hydration_Bounds(t *testing.T) {
	testCases := []struct {
		duration  int
		temp      float64
		sweatRate float64
		wantField string
	}{
		{60, 72, 2.5, ""},
		{15, 40, 1.0, ""},
		{240, 110, 5.0, ""},
		{14, 72, 2.5, "workout_duration_minutes"},
		{241, 72, 2.5, "workout_duration_minutes"},
		{60, 39, 2.5, "ambient_temp_f"},
		{60, 111, 2.5, "ambient_temp_f"},
		{60, 72, 0.9, "sweat_rate_lbs_per_hour"},
		{60, 72, 5.1, "sweat_rate_lbs_per_hour"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d_%v_%v", tc.duration, tc.temp, tc.sweatRate), func(t *testing.T) {
			in := CalculateHydrationInput{
				WorkoutDurationMinutes: tc.duration,
				Intensity:              RPE8,
				AmbientTempF:           tc.temp,
				SweatRateLbsPerHour:    tc.sweatRate,
				ResponseFormat:         FormatMarkdown,
			}
			err := Validate(&in)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			requireValidationError(t, err, tc.wantField, CodeOutOfRange)
		})
	}
}

func TestNormalize_Hydration_Defaults(t *testing.T) {
	in := CalculateHydrationInput{
		WorkoutDurationMinutes: 60,
		Intensity:              RPE8,
	}
	in.Normalize()

	assert.Equal(t, 72.0, in.AmbientTempF)
	assert.Equal(t, 2.5, in.SweatRateLbsPerHour)
	assert.Equal(t, FormatMarkdown, in.ResponseFormat)
	assert.NoError(t, Validate(&in))
}

func TestValidate_Nutrition_MealTime(t *testing.T) {
	valid := []string{"00:00", "06:00", "9:15", "12:30", "23:59"}
	for _, mealTime := range valid {
		in := LogNutritionInput{
			MealTime:        mealTime,
			MealDescription: "chicken and rice",
			ResponseFormat:  FormatMarkdown,
		}
		assert.NoError(t, Validate(&in), "meal_time=%s", mealTime)
	}

	invalid := []string{"24:00", "9:60", "12", "12:3", "noon", ""}
	for _, mealTime := range invalid {
		in := LogNutritionInput{
			MealTime:        mealTime,
			MealDescription: "chicken and rice",
			ResponseFormat:  FormatMarkdown,
		}
		requireValidationError(t, Validate(&in), "meal_time", CodeInvalidFormat)
	}
}

func TestValidate_Nutrition_MacroBounds(t *testing.T) {
	protein := 301
	in := LogNutritionInput{
		MealTime:        "12:30",
		MealDescription: "protein overload",
		ProteinG:        &protein,
		ResponseFormat:  FormatMarkdown,
	}
	requireValidationError(t, Validate(&in), "protein_g", CodeOutOfRange)

	calories := 5001
	in = LogNutritionInput{
		MealTime:        "12:30",
		MealDescription: "feast",
		Calories:        &calories,
		ResponseFormat:  FormatMarkdown,
	}
	requireValidationError(t, Validate(&in), "calories", CodeOutOfRange)
}

func TestValidate_Library(t *testing.T) {
	in := GetExerciseLibraryInput{ResponseFormat: FormatMarkdown}
	assert.NoError(t, Validate(&in), "empty category is allowed")

	in.Category = CategoryPressing
	assert.NoError(t, Validate(&in))

	in.Category = "cardio"
	requireValidationError(t, Validate(&in), "category", CodeInvalidEnum)

	in = GetExerciseLibraryInput{
		SearchTerm:     gofakeit.New(0).LetterN(51),
		ResponseFormat: FormatMarkdown,
	}
	requireValidationError(t, Validate(&in), "search_term", CodeOutOfRange)
}

func TestValidate_Rehab(t *testing.T) {
	in := GetRehabProtocolInput{Condition: "ac_joint_arthritis", ResponseFormat: FormatMarkdown}
	assert.NoError(t, Validate(&in))

	// condition membership is not an enum check, any non-empty string passes
	in.Condition = "unknown_condition"
	assert.NoError(t, Validate(&in))

	in.Condition = ""
	requireValidationError(t, Validate(&in), "condition", CodeOutOfRange)

	phase := 5
	in = GetRehabProtocolInput{Condition: "ac_joint_arthritis", Phase: &phase, ResponseFormat: FormatMarkdown}
	requireValidationError(t, Validate(&in), "phase", CodeOutOfRange)
}

func TestValidate_InvalidResponseFormat(t *testing.T) {
	in := validWorkoutInput()
	in.ResponseFormat = "yaml"
	err := Validate(&in)
	requireValidationError(t, err, "response_format", CodeInvalidEnum)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, `INVALID_ENUM: response_format has an invalid value "yaml"`, vErr.Error())
}
