package fittrack

import "strings"

// LibrarySection is one category of the exercise library view.
type LibrarySection struct {
	Category  string   `json:"category"`
	Exercises []string `json:"exercises"`
}

// LibraryResult is the filtered library view plus the static unsafe list.
type LibraryResult struct {
	Sections []LibrarySection `json:"exercises"`
	Unsafe   []string         `json:"unsafe_exercises"`
}

// libraryCategoryKeys maps the filter enum onto the safe-exercise store keys.
// The rehab category has no store entry, filtering by it yields no sections.
var libraryCategoryKeys = map[ExerciseCategory]string{
	CategoryPressing:          "pressing",
	CategoryPulling:           "pulling",
	CategoryLowerBody:         "lower_body_standing",
	CategorySerratusLowerTrap: "serratus_lower_trap_focus",
	CategoryCore:              "core_standing",
}

// FilterLibrary returns the exercise library narrowed by category and/or
// case-insensitive search substring. Category-filtered sections carry the
// request's category literal as their name, unfiltered listings carry the
// store's internal keys.
func FilterLibrary(category ExerciseCategory, searchTerm string) LibraryResult {
	var sections []LibrarySection

	if category != "" {
		if key, ok := libraryCategoryKeys[category]; ok {
			sections = append(sections, LibrarySection{
				Category:  string(category),
				Exercises: acJointSafeExercises[key],
			})
		}
	} else {
		for _, key := range safeCategoryScanOrder {
			sections = append(sections, LibrarySection{
				Category:  key,
				Exercises: acJointSafeExercises[key],
			})
		}
	}

	if searchTerm != "" {
		searchLower := strings.ToLower(searchTerm)
		var filtered []LibrarySection
		for _, section := range sections {
			var matching []string
			for _, exercise := range section.Exercises {
				if strings.Contains(strings.ToLower(exercise), searchLower) {
					matching = append(matching, exercise)
				}
			}
			if len(matching) > 0 {
				filtered = append(filtered, LibrarySection{
					Category:  section.Category,
					Exercises: matching,
				})
			}
		}
		sections = filtered
	}

	return LibraryResult{
		Sections: sections,
		Unsafe:   acJointUnsafe,
	}
}
