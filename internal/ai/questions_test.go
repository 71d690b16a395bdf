package ai

import (
	"testing"

	"github.com/srinivas0721/InterviewBot/pkg/model"
)

func TestParseQuestions(t *testing.T) {
	raw := `{
		"questions": [
			{
				"category": "technical",
				"question_text": "What is the time complexity of binary search?",
				"options": ["O(n)", "O(log n)"],
				"correct_answer": "b",
				"difficulty": "medium"
			},
			{
				"question_text": "Describe a challenging project."
			},
			{
				"category": "behavioral",
				"question_text": "   "
			}
		]
	}`

	questions, err := parseQuestions(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2 (blank text dropped)", len(questions))
	}

	if questions[0].Category != model.CategoryTechnical || len(questions[0].Options) != 2 {
		t.Errorf("unexpected first question: %+v", questions[0])
	}
	if questions[1].Category != model.CategoryTechnical {
		t.Errorf("missing category must default to technical, got %q", questions[1].Category)
	}
	if questions[1].Difficulty != model.DifficultyMedium {
		t.Errorf("missing difficulty must default to medium, got %q", questions[1].Difficulty)
	}
}

func TestParseQuestionsRejectsNonJSON(t *testing.T) {
	if _, err := parseQuestions("Sure! Here are your questions:"); err == nil {
		t.Fatal("expected error for non-JSON output")
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range tests {
		if got := stripCodeFences(tc.in); got != tc.want {
			t.Errorf("stripCodeFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFallbackQuestionsRoundRobin(t *testing.T) {
	req := QuestionRequest{
		Categories: []model.Category{
			model.CategoryTechnical,
			model.CategoryBehavioral,
		},
		TotalQuestions: 4,
	}

	questions := fallbackQuestions(req)
	if len(questions) != 4 {
		t.Fatalf("got %d questions, want 4", len(questions))
	}

	wantCats := []model.Category{
		model.CategoryTechnical,
		model.CategoryBehavioral,
		model.CategoryTechnical,
		model.CategoryBehavioral,
	}
	for i, q := range questions {
		if q.Category != wantCats[i] {
			t.Errorf("question %d category = %q, want %q", i, q.Category, wantCats[i])
		}
		if q.QuestionText == "" {
			t.Errorf("question %d has empty text", i)
		}
		if q.Difficulty != model.DifficultyMedium {
			t.Errorf("question %d difficulty = %q", i, q.Difficulty)
		}
	}

	// same category twice must not repeat the question
	if questions[0].QuestionText == questions[2].QuestionText {
		t.Error("round robin repeated a bank question")
	}
}

func TestFallbackQuestionsSkipsUnbankedCategories(t *testing.T) {
	req := QuestionRequest{
		Categories:     []model.Category{model.CategoryCommunication},
		TotalQuestions: 3,
	}
	if questions := fallbackQuestions(req); len(questions) != 0 {
		t.Errorf("got %d questions for unbanked category, want 0", len(questions))
	}

	if questions := fallbackQuestions(QuestionRequest{TotalQuestions: 3}); questions != nil {
		t.Errorf("no categories must yield nil, got %v", questions)
	}
}
