package interview

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srinivas0721/InterviewBot/pkg/model"
)

// fakeStore keeps one session in memory and applies UpdateSession the way the
// real repository does, so Finalize can be driven end to end without a
// database.
type fakeStore struct {
	session   model.Session
	questions []model.Question
	answers   []model.Answer
	updates   int
}

func (f *fakeStore) ListQuestionsBySession(_ context.Context, sessionID uuid.UUID) ([]model.Question, error) {
	if sessionID != f.session.SessionID {
		return nil, fmt.Errorf("session not found")
	}
	return f.questions, nil
}

func (f *fakeStore) ListAnswersBySession(_ context.Context, sessionID uuid.UUID) ([]model.Answer, error) {
	if sessionID != f.session.SessionID {
		return nil, fmt.Errorf("session not found")
	}
	return f.answers, nil
}

func (f *fakeStore) UpdateSession(_ context.Context, sessionID uuid.UUID, updates map[string]interface{}) error {
	if sessionID != f.session.SessionID {
		return fmt.Errorf("session not found")
	}
	f.updates++
	for col, val := range updates {
		switch col {
		case "status":
			f.session.Status = val.(model.SessionStatus)
		case "completed_at":
			at := val.(time.Time)
			f.session.CompletedAt = &at
		case "overall_score":
			score := val.(float64)
			f.session.OverallScore = &score
		case "category_scores":
			f.session.CategoryScores = val.(map[string]float64)
		case "strengths":
			f.session.Strengths = val.([]string)
		case "weaknesses":
			f.session.Weaknesses = val.([]string)
		case "recommendations":
			f.session.Recommendations = val.([]string)
		}
	}
	return nil
}

func (f *fakeStore) GetUserSession(_ context.Context, sessionID, userID uuid.UUID) (*model.Session, error) {
	if sessionID != f.session.SessionID || userID != f.session.UserID {
		return nil, fmt.Errorf("session not found")
	}
	s := f.session
	return &s, nil
}

type fakeAdvisor struct {
	recs  []string
	err   error
	calls int
}

func (f *fakeAdvisor) GenerateRecommendations(_ context.Context, _ float64, _ map[string]float64, _, _ []string) ([]string, error) {
	f.calls++
	return f.recs, f.err
}

func newTestEngine(scores map[model.Category][]float64, advisor Advisor) (*Engine, *fakeStore) {
	questions, answers := makeQA(scores)
	store := &fakeStore{
		session: model.Session{
			SessionID:      uuid.New(),
			UserID:         uuid.New(),
			Status:         model.StatusInProgress,
			TotalQuestions: len(questions),
		},
		questions: questions,
		answers:   answers,
	}
	return NewEngine(store, advisor, zap.NewNop()), store
}

func TestFinalize(t *testing.T) {
	advisor := &fakeAdvisor{recs: []string{"practice more"}}
	engine, store := newTestEngine(map[model.Category][]float64{
		model.CategoryTechnical:  {8.0},
		model.CategoryBehavioral: {6.0},
	}, advisor)

	updated, err := engine.Finalize(context.Background(), &store.session)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if updated.Status != model.StatusCompleted {
		t.Errorf("status = %v, want completed", updated.Status)
	}
	if updated.CompletedAt == nil {
		t.Error("completed_at not set")
	}
	if updated.OverallScore == nil || *updated.OverallScore != 7.0 {
		t.Errorf("overall score = %v, want 7.0", updated.OverallScore)
	}
	if updated.CategoryScores["technical"] != 8.0 || updated.CategoryScores["behavioral"] != 6.0 {
		t.Errorf("category scores = %v", updated.CategoryScores)
	}
	if len(updated.Recommendations) != 1 || updated.Recommendations[0] != "practice more" {
		t.Errorf("recommendations = %v", updated.Recommendations)
	}
	if advisor.calls != 1 {
		t.Errorf("advisor called %d times, want 1", advisor.calls)
	}
}

func TestFinalizeIdempotent(t *testing.T) {
	advisor := &fakeAdvisor{recs: []string{"practice more"}}
	engine, store := newTestEngine(map[model.Category][]float64{
		model.CategoryTechnical:  {8.0, 9.0},
		model.CategoryBehavioral: {6.0},
	}, advisor)

	first, err := engine.Finalize(context.Background(), &store.session)
	if err != nil {
		t.Fatalf("first Finalize: %v", err)
	}

	// finalizing the already completed session recomputes the same result
	// from the stored answers
	second, err := engine.Finalize(context.Background(), first)
	if err != nil {
		t.Fatalf("second Finalize: %v", err)
	}

	if *second.OverallScore != *first.OverallScore {
		t.Errorf("overall score changed: %v -> %v", *first.OverallScore, *second.OverallScore)
	}
	if !reflect.DeepEqual(second.CategoryScores, first.CategoryScores) {
		t.Errorf("category scores changed: %v -> %v", first.CategoryScores, second.CategoryScores)
	}
	if !reflect.DeepEqual(second.Strengths, first.Strengths) {
		t.Errorf("strengths changed: %v -> %v", first.Strengths, second.Strengths)
	}
	if second.Status != model.StatusCompleted {
		t.Errorf("status = %v, want completed", second.Status)
	}
	if store.updates != 2 {
		t.Errorf("updates = %d, want 2", store.updates)
	}
}

func TestFinalizeNoAnswers(t *testing.T) {
	advisor := &fakeAdvisor{recs: []string{"practice more"}}
	engine, store := newTestEngine(nil, advisor)

	updated, err := engine.Finalize(context.Background(), &store.session)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if updated.OverallScore == nil || *updated.OverallScore != 0 {
		t.Errorf("overall score = %v, want 0", updated.OverallScore)
	}
	if len(updated.Recommendations) != 1 || updated.Recommendations[0] != "Complete the interview to receive proper feedback" {
		t.Errorf("recommendations = %v", updated.Recommendations)
	}
	if advisor.calls != 0 {
		t.Errorf("advisor called %d times for an empty session", advisor.calls)
	}
}

func TestFinalizeAdvisorFallback(t *testing.T) {
	advisor := &fakeAdvisor{err: errors.New("api down")}
	engine, store := newTestEngine(map[model.Category][]float64{
		model.CategoryTechnical: {5.0},
	}, advisor)

	updated, err := engine.Finalize(context.Background(), &store.session)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if !reflect.DeepEqual(updated.Recommendations, fallbackRecommendations()) {
		t.Errorf("recommendations = %v, want fallback list", updated.Recommendations)
	}
}
