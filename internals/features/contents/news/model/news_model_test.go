package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kbcms_backend/internals/constants"
)

func TestQuizQuestionsRoundTrip(t *testing.T) {
	var m NewsModel
	in := []NewsQuizQuestion{
		{
			Question:       "Ibukota Indonesia?",
			Options:        []string{"Jakarta", "Bandung"},
			CorrectAnswers: []string{"Jakarta"},
		},
	}
	require.NoError(t, m.SetQuizQuestions(in))

	out := m.QuizQuestions()
	require.Len(t, out, 1)
	assert.Equal(t, in[0], out[0])
}

func TestQuizQuestionsEmpty(t *testing.T) {
	var m NewsModel
	require.NoError(t, m.SetQuizQuestions(nil))
	assert.Empty(t, m.QuizQuestions())
}

func TestApplyStatusSetsPublishedAtOnce(t *testing.T) {
	var m NewsModel

	m.ApplyStatus(constants.StatusDraft)
	assert.Equal(t, constants.StatusDraft, m.NewsStatus)
	assert.Nil(t, m.NewsPublishedAt)

	m.ApplyStatus(constants.StatusPublished)
	require.NotNil(t, m.NewsPublishedAt)
	first := *m.NewsPublishedAt

	time.Sleep(5 * time.Millisecond)
	m.ApplyStatus(constants.StatusPublished)
	assert.Equal(t, first, *m.NewsPublishedAt, "publish ulang tidak boleh menggeser published_at")
}
