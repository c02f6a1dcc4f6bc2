package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/margdarshak/career-advisor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResultStore captures persisted quiz results.
type fakeResultStore struct {
	results []*models.QuizResult
	err     error
}

func (s *fakeResultStore) CreateQuizResult(ctx context.Context, result *models.QuizResult) error {
	if s.err != nil {
		return s.err
	}
	result.ID = "result-1"
	s.results = append(s.results, result)
	return nil
}

func submitQuiz(t *testing.T, endpoints *QuizEndpoints, body SubmitQuizRequest) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/submit-quiz", bytes.NewReader(payload))
	user := &models.User{ID: "user-1", Name: "Priya Sharma", Email: "priya@example.com"}
	req = req.WithContext(context.WithValue(req.Context(), userContextKey, user))

	rec := httptest.NewRecorder()
	endpoints.SubmitQuizHandler(rec, req)
	return rec
}

func TestSubmitQuizHandler(t *testing.T) {
	store := &fakeResultStore{}
	endpoints := NewQuizEndpoints(NewQuizEngine(QuizConfig{}), store)

	rec := submitQuiz(t, endpoints, SubmitQuizRequest{
		QuizType: QuizTypeAptitude,
		Answers:  [][]string{{"science", "math"}, {}, {}, {}, {}},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SubmitQuizResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Quiz submitted successfully", resp.Message)
	assert.Equal(t, 55, resp.Score)
	assert.Equal(t, []string{"Commerce stream recommended"}, resp.Recommendations)

	require.Len(t, store.results, 1)
	saved := store.results[0]
	assert.Equal(t, "user-1", saved.UserID)
	assert.Equal(t, QuizTypeAptitude, saved.QuizType)
	assert.Equal(t, 55, saved.Score)
	assert.JSONEq(t, `[["science","math"],[],[],[],[]]`, saved.Answers)
	assert.JSONEq(t, `["Commerce stream recommended"]`, saved.Recommendations)
}

func TestSubmitQuizHandlerIgnoresBodyUserID(t *testing.T) {
	store := &fakeResultStore{}
	endpoints := NewQuizEndpoints(NewQuizEngine(QuizConfig{}), store)

	rec := submitQuiz(t, endpoints, SubmitQuizRequest{
		UserID:   "someone-else",
		QuizType: QuizTypeAptitude,
		Answers:  [][]string{{}, {}, {}, {}, {}},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.results, 1)
	assert.Equal(t, "user-1", store.results[0].UserID)
}

func TestSubmitQuizHandlerBadShape(t *testing.T) {
	store := &fakeResultStore{}
	endpoints := NewQuizEndpoints(NewQuizEngine(QuizConfig{}), store)

	rec := submitQuiz(t, endpoints, SubmitQuizRequest{
		QuizType: QuizTypeAptitude,
		Answers:  [][]string{{"science"}},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.results)
}

func TestSubmitQuizHandlerPersistenceFailure(t *testing.T) {
	store := &fakeResultStore{err: errors.New("connection reset")}
	endpoints := NewQuizEndpoints(NewQuizEngine(QuizConfig{}), store)

	rec := submitQuiz(t, endpoints, SubmitQuizRequest{
		QuizType: QuizTypeAptitude,
		Answers:  [][]string{{}, {}, {}, {}, {}},
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to save quiz results", resp["error"])
}

func TestGetQuestionsHandler(t *testing.T) {
	endpoints := NewQuizEndpoints(NewQuizEngine(QuizConfig{}), &fakeResultStore{})

	req := httptest.NewRequest("GET", "/api/quiz/questions", nil)
	rec := httptest.NewRecorder()
	endpoints.GetQuestionsHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp GetQuestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Count)
	require.Len(t, resp.Questions, 5)
	assert.Equal(t, "subject-interest", resp.Questions[0].ID)
}
