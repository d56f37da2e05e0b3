package catalog

// DifficultyLevel is the advertised difficulty of a module.
type DifficultyLevel string

const (
	LevelBeginner     DifficultyLevel = "beginner"
	LevelIntermediate DifficultyLevel = "intermediate"
	LevelAdvanced     DifficultyLevel = "advanced"
)

// Module is a top-level course unit: an ordered plan of weeks, each holding
// days, each holding activities. Catalog data is immutable reference data;
// learner state never lives here.
type Module struct {
	ID          string          `yaml:"id"`
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Icon        string          `yaml:"icon"`
	Color       string          `yaml:"color"`
	Duration    string          `yaml:"duration"`
	Level       DifficultyLevel `yaml:"level"`
	BadgeID     string          `yaml:"badge"`
	Skill       string          `yaml:"skill"`
	SkillPoints int             `yaml:"skill_points"`
	Weeks       []Week          `yaml:"weeks"`
}

// Week is one week of a module's plan.
type Week struct {
	Number    int    `yaml:"number"`
	Title     string `yaml:"title"`
	Objective string `yaml:"objective"`
	Days      []Day  `yaml:"days"`
}

// Day is one day of a week.
type Day struct {
	Number      int        `yaml:"number"`
	Title       string     `yaml:"title"`
	DurationMin int        `yaml:"duration_min"`
	Activities  []Activity `yaml:"activities"`
}

// Activity is the smallest completable unit, worth a fixed XP value.
type Activity struct {
	ID          string       `yaml:"id"`
	Type        ActivityType `yaml:"type"`
	Title       string       `yaml:"title"`
	DurationMin int          `yaml:"duration_min"`
	XP          int          `yaml:"xp"`
}

// TotalXP sums the XP of every activity in the module.
func (m *Module) TotalXP() int {
	total := 0
	for _, w := range m.Weeks {
		for _, d := range w.Days {
			for _, a := range d.Activities {
				total += a.XP
			}
		}
	}
	return total
}

// ActivityCount returns the number of activities across all weeks and days.
func (m *Module) ActivityCount() int {
	n := 0
	for _, w := range m.Weeks {
		for _, d := range w.Days {
			n += len(d.Activities)
		}
	}
	return n
}

// Activities returns every activity in week/day order.
func (m *Module) Activities() []Activity {
	var out []Activity
	for _, w := range m.Weeks {
		for _, d := range w.Days {
			out = append(out, d.Activities...)
		}
	}
	return out
}

// WeekActivityIDs returns the ids of all activities in the given week number,
// or nil if the module has no such week.
func (m *Module) WeekActivityIDs(weekNumber int) []string {
	for _, w := range m.Weeks {
		if w.Number != weekNumber {
			continue
		}
		var ids []string
		for _, d := range w.Days {
			for _, a := range d.Activities {
				ids = append(ids, a.ID)
			}
		}
		return ids
	}
	return nil
}
