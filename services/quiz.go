package services

// The aptitude quiz: a fixed question catalog and the scoring rules that turn
// a set of answers into a stream recommendation.

// QuizTypeAptitude is the only quiz type with scoring rules; submissions of
// other types are stored with a zero score and no recommendations.
const QuizTypeAptitude = "aptitude"

// Selection modes for quiz questions.
const (
	SelectSingle   = "single"
	SelectMultiple = "multiple"
)

type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Type     string   `json:"type"`
}

type QuizOutcome struct {
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations"`
}

// questionCatalog is the fixed aptitude question set, defined at process
// start and never mutated.
var questionCatalog = []Question{
	{
		ID:       "subject-interest",
		Question: "What subjects interest you the most?",
		Options:  []string{"Mathematics & Logic", "Biology & Nature", "Literature & Languages", "Business & Economics"},
		Type:     SelectMultiple,
	},
	{
		ID:       "work-environment",
		Question: "What type of work environment do you prefer?",
		Options:  []string{"Research Laboratory", "Office & Business", "Creative Studio", "Field Work"},
		Type:     SelectSingle,
	},
	{
		ID:       "problem-solving",
		Question: "How do you prefer to solve problems?",
		Options:  []string{"Through experiments", "With data and analysis", "Through discussion", "With practical solutions"},
		Type:     SelectSingle,
	},
	{
		ID:       "career-goal",
		Question: "What are your career goals?",
		Options:  []string{"Scientific Research", "Business Management", "Teaching", "Public Service"},
		Type:     SelectMultiple,
	},
	{
		ID:       "skill-development",
		Question: "What skills do you want to develop?",
		Options:  []string{"Technical Skills", "Communication Skills", "Leadership Skills", "Creative Skills"},
		Type:     SelectMultiple,
	},
}

// Keyword weights for aptitude scoring. The checks are independent and
// additive: every keyword present in the flattened answer set contributes
// its weight once.
var keywordWeights = []struct {
	keyword string
	points  int
}{
	{"science", 30},
	{"math", 25},
	{"arts", 20},
	{"business", 25},
}

// Recommendation tiers, checked highest first.
var recommendationTiers = []struct {
	minScore       int
	recommendation string
}{
	{70, "Science stream recommended"},
	{45, "Commerce stream recommended"},
	{0, "Arts stream recommended"},
}

// optionKeywords maps catalog option labels to scoring keywords. The
// historical scoring matched raw keywords the catalog never produces, so
// every real submission scored 0; this table is the corrected mapping,
// enabled by quiz.corrected_matching.
var optionKeywords = map[string]string{
	"Mathematics & Logic":    "math",
	"Biology & Nature":       "science",
	"Literature & Languages": "arts",
	"Business & Economics":   "business",
	"Research Laboratory":    "science",
	"Office & Business":      "business",
	"Creative Studio":        "arts",
	"Through experiments":    "science",
	"With data and analysis": "math",
	"Through discussion":     "arts",
	"Scientific Research":    "science",
	"Business Management":    "business",
	"Teaching":               "arts",
	"Technical Skills":       "science",
	"Communication Skills":   "arts",
	"Leadership Skills":      "business",
	"Creative Skills":        "arts",
}

// QuizEngine scores aptitude submissions against the fixed question catalog.
type QuizEngine struct {
	correctedMatching bool
}

func NewQuizEngine(cfg QuizConfig) *QuizEngine {
	return &QuizEngine{correctedMatching: cfg.CorrectedMatching}
}

// Questions returns the ordered question catalog. Callers must not mutate
// the returned slice.
func (e *QuizEngine) Questions() []Question {
	return questionCatalog
}

// Score computes the aptitude score and recommendation for one submission.
// answers holds one group of selected option labels per question, in
// question order. Pure and deterministic.
func (e *QuizEngine) Score(quizType string, answers [][]string) (*QuizOutcome, error) {
	if len(answers) != len(questionCatalog) {
		return nil, ErrInvalidAnswerShape
	}

	outcome := &QuizOutcome{Recommendations: []string{}}
	if quizType != QuizTypeAptitude {
		return outcome, nil
	}

	selected := map[string]bool{}
	for _, group := range answers {
		for _, answer := range group {
			if e.correctedMatching {
				if keyword, ok := optionKeywords[answer]; ok {
					selected[keyword] = true
				}
				continue
			}
			selected[answer] = true
		}
	}

	for _, kw := range keywordWeights {
		if selected[kw.keyword] {
			outcome.Score += kw.points
		}
	}

	for _, tier := range recommendationTiers {
		if outcome.Score >= tier.minScore {
			outcome.Recommendations = append(outcome.Recommendations, tier.recommendation)
			break
		}
	}

	return outcome, nil
}
