package ai

import (
	"strings"
	"testing"
)

func TestParseEvaluation(t *testing.T) {
	raw := `{
		"score": 8,
		"feedback": "Accurate and well structured.",
		"corrected_answer": "An ideal answer.",
		"missing_points": "Edge cases were not covered.",
		"evaluation_details": {"clarity": 8, "depth": 7, "confidence": 8, "relevance": 9, "structure": 7}
	}`

	eval, err := parseEvaluation(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.Score != 8 {
		t.Errorf("score = %v, want 8", eval.Score)
	}
	if eval.MissingPoints != "Edge cases were not covered." {
		t.Errorf("missing points = %q", eval.MissingPoints)
	}
	if eval.EvaluationDetails["relevance"] != 9 {
		t.Errorf("relevance = %v, want 9", eval.EvaluationDetails["relevance"])
	}
}

func TestParseEvaluationDefaults(t *testing.T) {
	eval, err := parseEvaluation(`{}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.Score != 5.0 {
		t.Errorf("missing score must default to 5.0, got %v", eval.Score)
	}
	if eval.Feedback == "" {
		t.Error("missing feedback must get a default")
	}
}

func TestParseEvaluationClampsScore(t *testing.T) {
	eval, err := parseEvaluation(`{"score": 14}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.Score != 10 {
		t.Errorf("score = %v, want 10", eval.Score)
	}
}

func TestParseEvaluationMissingPointsArray(t *testing.T) {
	// the prompt demands a string but models return arrays anyway
	raw := `{"score": 6, "missing_points": ["no examples", "no complexity analysis"]}`
	eval, err := parseEvaluation(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.MissingPoints != "no examples; no complexity analysis" {
		t.Errorf("missing points = %q", eval.MissingPoints)
	}
}

func TestFallbackEvaluation(t *testing.T) {
	tests := []struct {
		name         string
		question     string
		answer       string
		wantScore    float64
		wantFeedback string
	}{
		{
			name:         "too short",
			question:     "Explain REST.",
			answer:       "idk",
			wantScore:    1.0,
			wantFeedback: "too short",
		},
		{
			name:         "gibberish",
			question:     "Explain REST.",
			answer:       "qwrtpsdfgqwrtpsdfg",
			wantScore:    1.0,
			wantFeedback: "doesn't appear to address",
		},
		{
			name:      "binary search correct",
			question:  "Explain the time complexity of binary search and why it's efficient.",
			answer:    "It runs in O(log n) because each step halves the range.",
			wantScore: 8.0,
		},
		{
			name:      "binary search wrong",
			question:  "Explain the time complexity of binary search and why it's efficient.",
			answer:    "It is linear because it touches every element once.",
			wantScore: 2.0,
		},
		{
			name:      "binary search vague",
			question:  "Explain the time complexity of binary search and why it's efficient.",
			answer:    "Binary search is generally quite fast on sorted arrays.",
			wantScore: 3.0,
		},
		{
			name:      "generic answer",
			question:  "What is a goroutine?",
			answer:    "A goroutine is a lightweight thread managed by the runtime.",
			wantScore: 3.0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			eval := fallbackEvaluation(EvaluationRequest{
				QuestionText: tc.question,
				AnswerText:   tc.answer,
			})
			if eval.Score != tc.wantScore {
				t.Errorf("score = %v, want %v", eval.Score, tc.wantScore)
			}
			if tc.wantFeedback != "" && !strings.Contains(eval.Feedback, tc.wantFeedback) {
				t.Errorf("feedback %q missing %q", eval.Feedback, tc.wantFeedback)
			}
		})
	}
}

func TestFallbackEvaluationDetails(t *testing.T) {
	eval := fallbackEvaluation(EvaluationRequest{
		QuestionText: "Explain the time complexity of binary search and why it's efficient.",
		AnswerText:   "It runs in O(log n) because each step halves the range.",
	})

	want := map[string]float64{
		"clarity":    7,
		"depth":      6,
		"confidence": 7,
		"relevance":  8,
		"structure":  7,
	}
	for key, v := range want {
		if eval.EvaluationDetails[key] != v {
			t.Errorf("detail %s = %v, want %v", key, eval.EvaluationDetails[key], v)
		}
	}

	low := fallbackEvaluation(EvaluationRequest{QuestionText: "q", AnswerText: "no"})
	for key, v := range low.EvaluationDetails {
		if key != "relevance" && v < 1 {
			t.Errorf("detail %s = %v, must floor at 1", key, v)
		}
	}
}
