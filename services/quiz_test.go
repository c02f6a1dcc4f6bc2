package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answersWith pads the given first-group tokens into a full five-group
// submission.
func answersWith(tokens ...string) [][]string {
	return [][]string{tokens, {}, {}, {}, {}}
}

func TestQuizEngineQuestions(t *testing.T) {
	engine := NewQuizEngine(QuizConfig{})
	questions := engine.Questions()

	require.Len(t, questions, 5)

	wantIDs := []string{"subject-interest", "work-environment", "problem-solving", "career-goal", "skill-development"}
	wantTypes := []string{SelectMultiple, SelectSingle, SelectSingle, SelectMultiple, SelectMultiple}
	for i, q := range questions {
		assert.Equal(t, wantIDs[i], q.ID)
		assert.Equal(t, wantTypes[i], q.Type)
		assert.NotEmpty(t, q.Question)
		assert.Len(t, q.Options, 4)
	}
}

func TestQuizEngineScore(t *testing.T) {
	tests := []struct {
		name                string
		answers             [][]string
		wantScore           int
		wantRecommendations []string
	}{
		{
			name:                "science and math",
			answers:             answersWith("science", "math"),
			wantScore:           55,
			wantRecommendations: []string{"Commerce stream recommended"},
		},
		{
			name:                "science math and business",
			answers:             answersWith("science", "math", "business"),
			wantScore:           80,
			wantRecommendations: []string{"Science stream recommended"},
		},
		{
			name:                "no matching tokens",
			answers:             answersWith("history", "geography"),
			wantScore:           0,
			wantRecommendations: []string{"Arts stream recommended"},
		},
		{
			name:                "all four tokens",
			answers:             answersWith("science", "math", "arts", "business"),
			wantScore:           100,
			wantRecommendations: []string{"Science stream recommended"},
		},
		{
			name:                "arts only",
			answers:             answersWith("arts"),
			wantScore:           20,
			wantRecommendations: []string{"Arts stream recommended"},
		},
		{
			name:                "math and business on the boundary",
			answers:             answersWith("math", "business"),
			wantScore:           50,
			wantRecommendations: []string{"Commerce stream recommended"},
		},
		{
			name:                "tokens spread across groups",
			answers:             [][]string{{"science"}, {"math"}, {}, {"business"}, {}},
			wantScore:           80,
			wantRecommendations: []string{"Science stream recommended"},
		},
		{
			name:                "duplicate tokens count once",
			answers:             [][]string{{"science"}, {"science"}, {"science"}, {}, {}},
			wantScore:           30,
			wantRecommendations: []string{"Arts stream recommended"},
		},
		{
			name:                "matching is case-sensitive",
			answers:             answersWith("Science", "MATH"),
			wantScore:           0,
			wantRecommendations: []string{"Arts stream recommended"},
		},
	}

	engine := NewQuizEngine(QuizConfig{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := engine.Score(QuizTypeAptitude, tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, outcome.Score)
			assert.Equal(t, tt.wantRecommendations, outcome.Recommendations)
		})
	}
}

func TestQuizEngineScoreIsDeterministic(t *testing.T) {
	engine := NewQuizEngine(QuizConfig{})
	answers := answersWith("science", "business")

	first, err := engine.Score(QuizTypeAptitude, answers)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := engine.Score(QuizTypeAptitude, answers)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestQuizEngineScoreRejectsBadShape(t *testing.T) {
	engine := NewQuizEngine(QuizConfig{})

	for _, groups := range [][][]string{
		nil,
		{},
		{{"science"}},
		{{}, {}, {}, {}},
		{{}, {}, {}, {}, {}, {}},
	} {
		_, err := engine.Score(QuizTypeAptitude, groups)
		assert.ErrorIs(t, err, ErrInvalidAnswerShape)
	}
}

func TestQuizEngineScoreNonAptitudeType(t *testing.T) {
	engine := NewQuizEngine(QuizConfig{})

	outcome, err := engine.Score("personality", answersWith("science", "math"))
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Score)
	assert.Empty(t, outcome.Recommendations)
}

func TestQuizEngineCorrectedMatching(t *testing.T) {
	engine := NewQuizEngine(QuizConfig{CorrectedMatching: true})

	// Catalog labels now carry their keyword weights.
	outcome, err := engine.Score(QuizTypeAptitude, [][]string{
		{"Mathematics & Logic", "Biology & Nature"},
		{"Creative Studio"},
		{},
		{},
		{},
	})
	require.NoError(t, err)
	assert.Equal(t, 75, outcome.Score) // math 25 + science 30 + arts 20
	assert.Equal(t, []string{"Science stream recommended"}, outcome.Recommendations)

	// Raw keywords no longer match once correction is on.
	outcome, err = engine.Score(QuizTypeAptitude, answersWith("science", "math"))
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Score)
	assert.Equal(t, []string{"Arts stream recommended"}, outcome.Recommendations)

	// Without the flag, catalog labels score nothing.
	literal := NewQuizEngine(QuizConfig{})
	outcome, err = literal.Score(QuizTypeAptitude, [][]string{
		{"Mathematics & Logic", "Biology & Nature"},
		{"Research Laboratory"},
		{"Through experiments"},
		{"Scientific Research"},
		{"Technical Skills"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Score)
	assert.Equal(t, []string{"Arts stream recommended"}, outcome.Recommendations)
}
