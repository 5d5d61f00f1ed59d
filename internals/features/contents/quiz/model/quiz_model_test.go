package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kbcms_backend/internals/constants"
)

func TestRecalcTotalsDefaultsPointsToOne(t *testing.T) {
	var m QuizModel
	require.NoError(t, m.SetQuestions([]QuizQuestion{
		{Question: "Q1", Options: []string{"a", "b"}, CorrectAnswers: []string{"a"}},
		{Question: "Q2", Options: []string{"a", "b"}, CorrectAnswers: []string{"b"}, Points: 5},
		{Question: "Q3", Options: []string{"a", "b"}, CorrectAnswers: []string{"a"}, Points: 0},
	}))

	m.RecalcTotals()

	assert.Equal(t, 3, m.QuizTotalQuestions)
	assert.Equal(t, 7, m.QuizTotalPoints) // 1 + 5 + 1
}

func TestRecalcTotalsEmptyQuestions(t *testing.T) {
	var m QuizModel
	require.NoError(t, m.SetQuestions(nil))

	m.RecalcTotals()

	assert.Equal(t, 0, m.QuizTotalQuestions)
	assert.Equal(t, 0, m.QuizTotalPoints)
}

func TestQuestionsRoundTrip(t *testing.T) {
	var m QuizModel
	in := []QuizQuestion{
		{Question: "Satuan gaya?", Options: []string{"Newton", "Joule"}, CorrectAnswers: []string{"Newton"}, Points: 2},
	}
	require.NoError(t, m.SetQuestions(in))

	out := m.Questions()
	require.Len(t, out, 1)
	assert.Equal(t, in[0], out[0])
}

func TestApplyStatusSetsPublishedAtOnce(t *testing.T) {
	var m QuizModel

	m.ApplyStatus(constants.StatusDraft)
	assert.Nil(t, m.QuizPublishedAt)

	m.ApplyStatus(constants.StatusPublished)
	require.NotNil(t, m.QuizPublishedAt)
	first := *m.QuizPublishedAt

	time.Sleep(5 * time.Millisecond)
	m.ApplyStatus(constants.StatusPublished)
	assert.Equal(t, first, *m.QuizPublishedAt, "published_at tidak boleh bergeser pada publish ulang")

	// kembali ke Draft lalu publish lagi: timestamp asli tetap
	m.ApplyStatus(constants.StatusDraft)
	m.ApplyStatus(constants.StatusPublished)
	assert.Equal(t, first, *m.QuizPublishedAt)
}
