package fittrack

import (
	"fmt"
	"strings"
)

// acJointSafeExercises groups AC-joint safe exercises by category. The map and
// the category scan order below are process-wide constants, never mutated.
var acJointSafeExercises = map[string][]string{
	"pressing": {
		"Landmine Press",
		"Scapular Plane DB Press (30-45° angle)",
		"Neutral Grip DB Press",
		"Low Incline Press (<30°)",
		"Floor Press",
	},
	"pulling": {
		"Face Pulls",
		"Cable Rows (all variations)",
		"DB Rows",
		"Lat Pulldowns (neutral/underhand grip)",
		"Scapular Retraction Exercises",
	},
	"lower_body_standing": {
		"Goblet Squats",
		"Split Squats",
		"Single-Leg RDL",
		"Landmine Squats",
		"Step-ups",
	},
	"serratus_lower_trap_focus": {
		"Serratus Wall Slides",
		"Bear Crawls",
		"Scapular Push-ups",
		"Lower Trap Y-Raises (prone)",
		"Prone T-Raises",
		"Band Pull-aparts (varied angles)",
	},
	"core_standing": {
		"Pallof Press",
		"Landmine Rotations",
		"Anti-Rotation Band Work",
		"Single-Leg Deadlift (balance component)",
	},
}

// safeCategoryScanOrder fixes the category scan order for safety checks and
// the section order for library listings.
var safeCategoryScanOrder = []string{
	"pressing",
	"pulling",
	"lower_body_standing",
	"serratus_lower_trap_focus",
	"core_standing",
}

// acJointUnsafe lists exercises to avoid with AC joint arthritis.
var acJointUnsafe = []string{
	"Bench Press (flat)",
	"Overhead Press (strict)",
	"Dips",
	"Wide-grip exercises",
	"Heavy cross-body movements",
}

// SafetyAssessment is the three-way safety verdict for an exercise name.
// Safe is nil when the exercise is not in either table.
type SafetyAssessment struct {
	Safe   *bool  `json:"safe"`
	Reason string `json:"reason"`
}

// Verdict returns "safe", "unsafe" or "unknown".
func (a SafetyAssessment) Verdict() string {
	switch {
	case a.Safe == nil:
		return "unknown"
	case *a.Safe:
		return "safe"
	default:
		return "unsafe"
	}
}

// CheckACJointSafety classifies an exercise name against the unsafe list
// first, then the safe categories in fixed order. Matching is case-insensitive
// substring in both directions of use: a table entry matches when its
// lowercased form is contained in the lowercased input.
func CheckACJointSafety(exerciseName string) SafetyAssessment {
	exerciseLower := strings.ToLower(exerciseName)

	for _, unsafe := range acJointUnsafe {
		if strings.Contains(exerciseLower, strings.ToLower(unsafe)) {
			safe := false
			return SafetyAssessment{
				Safe: &safe,
				Reason: fmt.Sprintf(
					"❌ %s is NOT recommended for AC joint arthritis. Avoid wide-grip and flat bench pressing.",
					exerciseName,
				),
			}
		}
	}

	for _, category := range safeCategoryScanOrder {
		for _, safeExercise := range acJointSafeExercises[category] {
			if strings.Contains(exerciseLower, strings.ToLower(safeExercise)) {
				safe := true
				return SafetyAssessment{
					Safe:   &safe,
					Reason: fmt.Sprintf("✅ %s is AC-joint safe (%s category).", exerciseName, category),
				}
			}
		}
	}

	return SafetyAssessment{
		Safe: nil,
		Reason: fmt.Sprintf(
			"⚠️  %s not in database. Verify with these principles: avoid flat bench press, wide-grip movements, strict overhead press. Prefer scapular-plane pressing (30-45° angle), neutral grips, and landmine variations.",
			exerciseName,
		),
	}
}
