package catalog

// ActivityType identifies what kind of work an activity is.
type ActivityType string

const (
	ActivityLecture  ActivityType = "lecture"
	ActivityVideo    ActivityType = "video"
	ActivityQuiz     ActivityType = "quiz"
	ActivityExercise ActivityType = "exercise"
	ActivityProject  ActivityType = "project"
)

// AllActivityTypes returns all activity types in display order.
func AllActivityTypes() []ActivityType {
	return []ActivityType{ActivityLecture, ActivityVideo, ActivityQuiz, ActivityExercise, ActivityProject}
}

// Valid reports whether t is a known activity type.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityLecture, ActivityVideo, ActivityQuiz, ActivityExercise, ActivityProject:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the activity type.
func (t ActivityType) DisplayName() string {
	switch t {
	case ActivityLecture:
		return "Lecture"
	case ActivityVideo:
		return "Video"
	case ActivityQuiz:
		return "Quiz"
	case ActivityExercise:
		return "Exercise"
	case ActivityProject:
		return "Project"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the activity type.
func (t ActivityType) Icon() string {
	switch t {
	case ActivityLecture:
		return "📖"
	case ActivityVideo:
		return "🎬"
	case ActivityQuiz:
		return "❓"
	case ActivityExercise:
		return "✏️"
	case ActivityProject:
		return "🏗️"
	default:
		return "✦"
	}
}
