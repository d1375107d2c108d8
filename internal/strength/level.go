package strength

// Level is the categorical strength band for a score.
type Level string

const (
	VeryWeak   Level = "very-weak"
	Weak       Level = "weak"
	Medium     Level = "medium"
	Strong     Level = "strong"
	VeryStrong Level = "very-strong"
)

const MaxScore = 10

// levelByScore maps every score in [0, MaxScore] to its band.
var levelByScore = [MaxScore + 1]Level{
	VeryWeak, VeryWeak, VeryWeak,
	Weak, Weak,
	Medium, Medium,
	Strong, Strong,
	VeryStrong, VeryStrong,
}

var labels = map[Level]string{
	VeryWeak:   "Very Weak",
	Weak:       "Weak",
	Medium:     "Medium",
	Strong:     "Strong",
	VeryStrong: "Very Strong",
}

// LevelFor returns the band for score. Out-of-range scores are clamped.
func LevelFor(score int) Level {
	return levelByScore[clampScore(score)]
}

// Label returns the human readable name of the level.
func (l Level) Label() string {
	return labels[l]
}

func clampScore(score int) int {
	return max(0, min(score, MaxScore))
}
