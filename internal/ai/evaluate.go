package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/srinivas0721/InterviewBot/internal/interview"
	"github.com/srinivas0721/InterviewBot/pkg/model"
)

// EvaluationRequest carries one answered question to the evaluator.
type EvaluationRequest struct {
	QuestionText string
	Category     model.Category
	AnswerText   string
}

const evaluationSystemPrompt = `You are a strict interview evaluator. Always respond with valid JSON only.

Evaluate this interview answer focusing on technical accuracy and knowledge quality. Be STRICT with scoring. Respond with ONLY valid JSON:

Question: %s
Category: %s
Answer: %s

CRITICAL EVALUATION RULES:
1. If the answer is random gibberish, nonsensical text, or completely unrelated: SCORE 1
2. If the answer is too short (less than 10 meaningful words): SCORE 1-2
3. If the answer contains no technical content relevant to the question: SCORE 1-2

Evaluation Criteria:
1. TECHNICAL ACCURACY (Most Important): Is the core technical content correct?
2. Depth of Knowledge: Does it show understanding of underlying concepts?
3. Clarity: Is the explanation clear and easy to understand?
4. Relevance: Does it directly answer the question?
5. Structure: Is it well-organized?

Scoring Guidelines (BE STRICT):
- 9-10: Technically accurate with excellent depth and examples
- 7-8: Technically accurate with good understanding
- 5-6: Partially correct or missing key details
- 3-4: Significant technical errors or very superficial
- 1-2: Fundamentally incorrect, off-topic, gibberish, or too short

Format:
{
  "score": 8,
  "feedback": "Detailed feedback focusing on technical accuracy and areas for improvement",
  "corrected_answer": "Provide the ideal/perfect answer that would get 9-10 points, demonstrating best practices and comprehensive understanding",
  "missing_points": "String listing the specific key points, concepts, or details that were missing from the user's answer. Do NOT return as array.",
  "evaluation_details": {
    "clarity": 8,
    "depth": 7,
    "confidence": 8,
    "relevance": 9,
    "structure": 7
  }
}`

// flexString tolerates the model returning an array where a string was asked
// for, joining the elements instead of failing the whole evaluation.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("expected string or string array: %w", err)
	}
	*f = flexString(strings.Join(items, "; "))
	return nil
}

type evaluationPayload struct {
	Score             *float64           `json:"score"`
	Feedback          string             `json:"feedback"`
	CorrectedAnswer   string             `json:"corrected_answer"`
	MissingPoints     flexString         `json:"missing_points"`
	EvaluationDetails map[string]float64 `json:"evaluation_details"`
}

// EvaluateAnswer scores one answer. Failures fall back to a keyword
// heuristic so answer submission never blocks on the model.
func (c *Client) EvaluateAnswer(ctx context.Context, req EvaluationRequest) *model.EvaluationRes {
	ctx, cancel := context.WithTimeout(ctx, c.evaluateTimeout)
	defer cancel()

	system := fmt.Sprintf(evaluationSystemPrompt, req.QuestionText, req.Category, req.AnswerText)

	raw, err := c.generateJSON(ctx, system, "Evaluate this answer", 0.3, 500)
	if err != nil {
		c.logger.Warn("answer evaluation failed, using fallback heuristic", zap.Error(err))
		return fallbackEvaluation(req)
	}

	eval, err := parseEvaluation(raw)
	if err != nil {
		c.logger.Warn("answer evaluation returned unusable output, using fallback heuristic", zap.Error(err))
		return fallbackEvaluation(req)
	}
	return eval
}

func parseEvaluation(raw string) (*model.EvaluationRes, error) {
	var payload evaluationPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decode evaluation: %w", err)
	}

	score := 5.0
	if payload.Score != nil {
		score = interview.ClampScore(*payload.Score)
	}
	feedback := payload.Feedback
	if feedback == "" {
		feedback = "Your answer shows understanding but could be improved."
	}

	return &model.EvaluationRes{
		Score:             score,
		Feedback:          feedback,
		CorrectedAnswer:   payload.CorrectedAnswer,
		MissingPoints:     string(payload.MissingPoints),
		EvaluationDetails: payload.EvaluationDetails,
	}, nil
}

// fallbackEvaluation scores without the model: length and gibberish gates
// first, then a keyword check for questions it knows about.
func fallbackEvaluation(req EvaluationRequest) *model.EvaluationRes {
	answer := strings.ToLower(strings.TrimSpace(req.AnswerText))
	score := 1.0
	feedback := "Unable to properly evaluate your answer. Please provide a more detailed technical response."

	switch {
	case len(answer) < 10:
		score = 1.0
		feedback = "Your answer is too short. Please provide a more detailed explanation."
	case interview.IsGibberish(answer):
		score = 1.0
		feedback = "Your answer doesn't appear to address the question. Please provide a relevant technical response."
	case strings.Contains(strings.ToLower(req.QuestionText), "binary search"):
		switch {
		case strings.Contains(answer, "o(log n)") || strings.Contains(answer, "logarithmic"):
			score = 8.0
			feedback = "Correct! Binary search has O(log n) time complexity because it divides the search space in half."
		case strings.Contains(answer, "o(n)") || strings.Contains(answer, "linear"):
			score = 2.0
			feedback = "Incorrect! Binary search has O(log n) time complexity, not O(n)."
		default:
			score = 3.0
			feedback = "Your answer mentions binary search but lacks technical details about time complexity."
		}
	default:
		score = 3.0
		feedback = "Your answer provides some information but lacks technical depth and clarity."
	}

	floor := func(v float64) float64 {
		if v < 1 {
			return 1
		}
		return v
	}

	return &model.EvaluationRes{
		Score:           score,
		Feedback:        feedback,
		CorrectedAnswer: "Unable to provide corrected answer in fallback mode. Please try again later.",
		MissingPoints:   "Unable to analyze missing points in fallback mode. Please try again later.",
		EvaluationDetails: map[string]float64{
			"clarity":    floor(score - 1),
			"depth":      floor(score - 2),
			"confidence": floor(score - 1),
			"relevance":  score,
			"structure":  floor(score - 1),
		},
	}
}
