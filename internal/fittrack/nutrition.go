package fittrack

import (
	"fmt"
	"strconv"
	"strings"
)

// lateMealWarningHour opens the late-meal window; it closes at 6am.
const lateMealWarningHour = 21

// LateMealWarning returns the guardrail advisory for meals eaten between
// 21:00 and 05:59, and whether it triggered. The meal time must already be
// validated as HH:MM.
func LateMealWarning(mealTime string) (string, bool) {
	hourStr, _, ok := strings.Cut(mealTime, ":")
	if !ok {
		return "", false
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return "", false
	}

	if hour >= lateMealWarningHour || hour < 6 {
		warning := []string{
			"🚨 **LATE MEAL GUARDRAIL TRIGGERED**",
			fmt.Sprintf("   - Eating at %s may interfere with sleep quality", mealTime),
			"   - Consider: 10-15 min walk after eating",
			"   - Keep portions lighter than usual",
			"   - Avoid high-fat, high-acid foods",
			"   - Next time: earlier protein snack (7-8pm) to prevent late binge",
		}
		return strings.Join(warning, "\n"), true
	}
	return "", false
}
