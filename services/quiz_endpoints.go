package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/margdarshak/career-advisor/models"
)

// ResultStore persists quiz submissions. *repository.GORMRepository
// satisfies it.
type ResultStore interface {
	CreateQuizResult(ctx context.Context, result *models.QuizResult) error
}

type QuizEndpoints struct {
	engine *QuizEngine
	store  ResultStore
}

type SubmitQuizRequest struct {
	UserID   string     `json:"userId"`
	QuizType string     `json:"quizType"`
	Answers  [][]string `json:"answers"`
}

type SubmitQuizResponse struct {
	Message         string   `json:"message"`
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations"`
}

type GetQuestionsResponse struct {
	Questions []Question `json:"questions"`
	Count     int        `json:"count"`
}

func NewQuizEndpoints(engine *QuizEngine, store ResultStore) *QuizEndpoints {
	return &QuizEndpoints{
		engine: engine,
		store:  store,
	}
}

func (e *QuizEndpoints) GetQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	questions := e.engine.Questions()

	writeJSON(w, http.StatusOK, GetQuestionsResponse{
		Questions: questions,
		Count:     len(questions),
	})
}

func (e *QuizEndpoints) SubmitQuizHandler(w http.ResponseWriter, r *http.Request) {
	// Get user from context (set by auth middleware)
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, "User not found in context")
		return
	}

	var req SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Submissions are always recorded against the authenticated user; the
	// userId field in the body is not trusted.
	userID := user.ID
	if req.UserID != "" && req.UserID != userID {
		slog.Warn("Quiz submission userId mismatch", "body_user_id", req.UserID, "token_user_id", userID)
	}

	outcome, err := e.engine.Score(req.QuizType, req.Answers)
	if err != nil {
		if errors.Is(err, ErrInvalidAnswerShape) {
			writeError(w, http.StatusBadRequest, "Answers must contain one group per question")
			return
		}
		slog.Error("Failed to score quiz", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Failed to score quiz")
		return
	}

	answersJSON, err := json.Marshal(req.Answers)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid answers payload")
		return
	}
	recommendationsJSON, err := json.Marshal(outcome.Recommendations)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save quiz results")
		return
	}

	result := &models.QuizResult{
		UserID:          userID,
		QuizType:        req.QuizType,
		Answers:         string(answersJSON),
		Score:           outcome.Score,
		Recommendations: string(recommendationsJSON),
	}

	if err := e.store.CreateQuizResult(r.Context(), result); err != nil {
		slog.Error("Failed to save quiz result", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Failed to save quiz results")
		return
	}

	writeJSON(w, http.StatusOK, SubmitQuizResponse{
		Message:         "Quiz submitted successfully",
		Score:           outcome.Score,
		Recommendations: outcome.Recommendations,
	})

	slog.Info("Quiz submitted", "result_id", result.ID, "user_id", userID, "quiz_type", req.QuizType, "score", outcome.Score)
}
