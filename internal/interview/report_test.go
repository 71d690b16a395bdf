package interview

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/srinivas0721/InterviewBot/pkg/model"
)

func TestRenderReport(t *testing.T) {
	completedAt := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	overall := 7.4
	feedback := "Solid explanation of the trade-offs."
	answerText := "I would shard by user id and cache hot keys."

	session := &model.Session{
		SessionID:    uuid.New(),
		Company:      "Acme",
		Role:         "Backend Engineer",
		Status:       model.StatusCompleted,
		OverallScore: &overall,
		Strengths:    []string{"Good system_design understanding"},
		Weaknesses:   []string{"Room for growth in behavioral"},
		Recommendations: []string{
			"Practice explaining technical concepts in simple terms",
		},
		CompletedAt: &completedAt,
	}

	answered := model.Question{
		QuestionID:     uuid.New(),
		QuestionNumber: 1,
		Category:       model.CategorySystemDesign,
		QuestionText:   "Design a distributed cache system.",
	}
	skipped := model.Question{
		QuestionID:     uuid.New(),
		QuestionNumber: 2,
		Category:       model.CategoryBehavioral,
		QuestionText:   "Tell me about a mistake you made.",
	}
	score := 7.4
	answers := []model.Answer{{
		AnswerID:         uuid.New(),
		QuestionID:       answered.QuestionID,
		SubjectiveAnswer: &answerText,
		Score:            &score,
		Feedback:         &feedback,
	}}

	html, err := RenderReport(session, []model.Question{answered, skipped}, answers)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	require.Equal(t, "Acme - Backend Engineer", doc.Find(".header h2").Text())
	require.Contains(t, doc.Find(".header").Text(), "March 14, 2025")
	require.Contains(t, doc.Find(".header .score").Text(), "7.4/10")

	require.Equal(t, 2, doc.Find(".question").Length())
	require.Equal(t, 1, doc.Find(".answer").Length(), "unanswered questions get no answer block")

	answer := doc.Find(".answer")
	require.Contains(t, answer.Text(), answerText)
	require.Contains(t, answer.Find(".feedback").Text(), feedback)

	require.Contains(t, doc.Find(".section").First().Text(), "Good system_design understanding")
	require.Contains(t, doc.Find(".question").First().Text(), "System Design")
}

func TestRenderReportEscapesUserContent(t *testing.T) {
	session := &model.Session{Company: "Acme", Role: "Dev"}
	hostile := "<script>alert(1)</script>"
	q := model.Question{QuestionID: uuid.New(), QuestionNumber: 1, QuestionText: hostile}

	html, err := RenderReport(session, []model.Question{q}, nil)
	require.NoError(t, err)
	require.NotContains(t, html, "<script>alert(1)</script>")
}

func TestReportDataURL(t *testing.T) {
	url := ReportDataURL("<html><body>hi there</body></html>")
	require.True(t, strings.HasPrefix(url, "data:text/html;charset=utf-8,"))
	require.NotContains(t, url, " ", "payload must be percent-encoded")
}
