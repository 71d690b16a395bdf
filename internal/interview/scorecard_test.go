package interview

import (
	"testing"

	"github.com/google/uuid"

	"github.com/srinivas0721/InterviewBot/pkg/model"
)

func ptr(v float64) *float64 { return &v }

func makeQA(scores map[model.Category][]float64) ([]model.Question, []model.Answer) {
	var questions []model.Question
	var answers []model.Answer
	number := 1
	for _, cat := range model.DefaultCategories() {
		for _, score := range scores[cat] {
			q := model.Question{
				QuestionID:     uuid.New(),
				QuestionNumber: number,
				Category:       cat,
				QuestionText:   "q",
			}
			questions = append(questions, q)
			answers = append(answers, model.Answer{
				AnswerID:   uuid.New(),
				QuestionID: q.QuestionID,
				Score:      ptr(score),
			})
			number++
		}
	}
	return questions, answers
}

func TestBuildScorecardEmpty(t *testing.T) {
	card := BuildScorecard(nil, nil)

	if card.Overall != 0 {
		t.Errorf("overall = %v, want 0", card.Overall)
	}
	if len(card.CategoryScores) != 0 {
		t.Errorf("category scores = %v, want empty", card.CategoryScores)
	}
	if len(card.Strengths) != 1 || card.Strengths[0] != "No responses provided" {
		t.Errorf("strengths = %v", card.Strengths)
	}
	if len(card.Weaknesses) != 1 || card.Weaknesses[0] != "Session incomplete" {
		t.Errorf("weaknesses = %v", card.Weaknesses)
	}
}

func TestBuildScorecardAverages(t *testing.T) {
	questions, answers := makeQA(map[model.Category][]float64{
		model.CategoryTechnical:  {8, 9},
		model.CategoryBehavioral: {6},
	})

	card := BuildScorecard(questions, answers)

	// (8+9+6)/3 = 7.666... -> 7.7
	if card.Overall != 7.7 {
		t.Errorf("overall = %v, want 7.7", card.Overall)
	}
	if got := card.CategoryScores["technical"]; got != 8.5 {
		t.Errorf("technical = %v, want 8.5", got)
	}
	if got := card.CategoryScores["behavioral"]; got != 6.0 {
		t.Errorf("behavioral = %v, want 6.0", got)
	}
}

func TestBuildScorecardUnscoredAnswersCountAsZero(t *testing.T) {
	q := model.Question{QuestionID: uuid.New(), Category: model.CategoryTechnical}
	answers := []model.Answer{
		{QuestionID: q.QuestionID, Score: ptr(8)},
		{QuestionID: q.QuestionID, Score: nil},
	}

	card := BuildScorecard([]model.Question{q}, answers)
	if card.Overall != 4.0 {
		t.Errorf("overall = %v, want 4.0", card.Overall)
	}
}

func TestDeriveInsightsBands(t *testing.T) {
	tests := []struct {
		name           string
		overall        float64
		categoryScores map[string]float64
		wantStrength   string
		wantWeakness   string
	}{
		{
			name:           "excellent category",
			overall:        8.5,
			categoryScores: map[string]float64{"technical": 9.0},
			wantStrength:   "Excellent technical knowledge",
		},
		{
			name:           "good category",
			overall:        6.5,
			categoryScores: map[string]float64{"behavioral": 6.0},
			wantStrength:   "Good behavioral understanding",
		},
		{
			name:           "low category",
			overall:        3.0,
			categoryScores: map[string]float64{"system_design": 3.5},
			wantWeakness:   "Needs improvement in system_design",
		},
		{
			name:           "middling category",
			overall:        5.0,
			categoryScores: map[string]float64{"communication": 5.0},
			wantWeakness:   "Room for growth in communication",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			strengths, weaknesses := deriveInsights(tc.overall, tc.categoryScores)
			if tc.wantStrength != "" && !contains(strengths, tc.wantStrength) {
				t.Errorf("strengths %v missing %q", strengths, tc.wantStrength)
			}
			if tc.wantWeakness != "" && !contains(weaknesses, tc.wantWeakness) {
				t.Errorf("weaknesses %v missing %q", weaknesses, tc.wantWeakness)
			}
		})
	}
}

func TestDeriveInsightsOverallBands(t *testing.T) {
	strengths, _ := deriveInsights(8.0, nil)
	if !contains(strengths, "Strong technical communication") || !contains(strengths, "Well-structured responses") {
		t.Errorf("high overall strengths = %v", strengths)
	}

	_, weaknesses := deriveInsights(2.0, nil)
	if !contains(weaknesses, "Insufficient technical depth") || !contains(weaknesses, "Poor interview readiness") {
		t.Errorf("low overall weaknesses = %v", weaknesses)
	}
}

func TestDeriveInsightsNeverEmpty(t *testing.T) {
	// overall 6.x with no weak categories yields no weaknesses by band,
	// so the default must kick in
	strengths, weaknesses := deriveInsights(6.5, map[string]float64{"technical": 7.0})
	if len(strengths) == 0 || len(weaknesses) == 0 {
		t.Errorf("insights must never be empty: strengths=%v weaknesses=%v", strengths, weaknesses)
	}
	if !contains(weaknesses, "Minor areas for refinement") {
		t.Errorf("weaknesses = %v, want default entry", weaknesses)
	}
}

func TestSanitizeEvaluation(t *testing.T) {
	eval := &model.EvaluationRes{Score: 9.0, Feedback: "Great answer"}
	if SanitizeEvaluation("A hash map gives O(1) average lookups.", eval) {
		t.Fatal("valid answer must not be overridden")
	}
	if eval.Score != 9.0 {
		t.Errorf("score changed to %v", eval.Score)
	}

	eval.EvaluationDetails = map[string]float64{"clarity": 8, "depth": 7}
	if !SanitizeEvaluation("zxcvzxcvzxcvzxcvzxcv", eval) {
		t.Fatal("gibberish answer must be overridden")
	}
	if eval.Score != 1.0 {
		t.Errorf("score = %v, want 1.0", eval.Score)
	}
	if eval.Feedback != "Your answer doesn't appear to address the question. Please provide a relevant technical response." {
		t.Errorf("unexpected feedback: %q", eval.Feedback)
	}
	// the per-criterion details stay as the evaluator produced them
	if eval.EvaluationDetails["clarity"] != 8 || eval.EvaluationDetails["depth"] != 7 {
		t.Errorf("evaluation details changed: %v", eval.EvaluationDetails)
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{5.5, 5.5},
		{10, 10},
		{11.2, 10},
	}
	for _, tc := range tests {
		if got := ClampScore(tc.in); got != tc.want {
			t.Errorf("ClampScore(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestProgress(t *testing.T) {
	p := Progress(2, 5)
	if p.Current != 2 || p.Total != 5 || p.Completed {
		t.Errorf("unexpected progress %+v", p)
	}

	p = Progress(5, 5)
	if !p.Completed {
		t.Errorf("expected completed progress, got %+v", p)
	}

	if Progress(0, 0).Completed {
		t.Error("zero-question session must not report completed")
	}
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
