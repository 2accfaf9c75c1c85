package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lauracmd12/Front-Davivienda/model"
	"github.com/lauracmd12/Front-Davivienda/stats"
)

func response(answers ...model.Answer) model.SurveyResponse {
	return model.SurveyResponse{
		SurveyID:    "sv-1",
		Answers:     answers,
		SubmittedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestAggregateRadio(t *testing.T) {
	survey := model.Survey{
		ID: "sv-1",
		Questions: []model.Question{
			{ID: "q1", Type: model.TypeRadio, Title: "¿A o B?", Options: []string{"A", "B"}, Order: 0},
		},
	}
	responses := []model.SurveyResponse{
		response(model.Answer{QuestionID: "q1", Value: model.StringValue("A")}),
		response(model.Answer{QuestionID: "q1", Value: model.StringValue("A")}),
	}

	res := stats.Aggregate(survey, responses)
	assert.Equal(t, 2, res.TotalResponses)
	assert.False(t, res.RemoteAvailable)

	require.Len(t, res.QuestionStats, 1)
	qs := res.QuestionStats[0]
	assert.Equal(t, 2, qs.Responses)
	assert.Equal(t, []model.Bucket{
		{Option: "A", Count: 2},
		{Option: "B", Count: 0},
	}, qs.Data)
}

func TestAggregateIgnoresUnlistedOptions(t *testing.T) {
	// the question may have been edited after responses were collected
	survey := model.Survey{
		Questions: []model.Question{
			{ID: "q1", Type: model.TypeSelect, Options: []string{"A", "B"}},
		},
	}
	responses := []model.SurveyResponse{
		response(model.Answer{QuestionID: "q1", Value: model.StringValue("A")}),
		response(model.Answer{QuestionID: "q1", Value: model.StringValue("C")}),
	}

	qs := stats.Aggregate(survey, responses).QuestionStats[0]
	assert.Equal(t, 1, qs.Responses)
	assert.Equal(t, []model.Bucket{{Option: "A", Count: 1}, {Option: "B", Count: 0}}, qs.Data)

	total := 0
	for _, b := range qs.Data {
		total += b.Count
	}
	assert.LessOrEqual(t, total, len(responses))
}

func TestAggregateCheckbox(t *testing.T) {
	survey := model.Survey{
		Questions: []model.Question{
			{ID: "q1", Type: model.TypeCheckbox, Options: []string{"A", "B", "C"}},
		},
	}
	responses := []model.SurveyResponse{
		response(model.Answer{QuestionID: "q1", Value: model.ListValue([]string{"A", "B"})}),
		response(model.Answer{QuestionID: "q1", Value: model.ListValue([]string{"B"})}),
		response(), // unanswered
	}

	qs := stats.Aggregate(survey, responses).QuestionStats[0]
	assert.Equal(t, 2, qs.Responses)
	assert.Equal(t, []model.Bucket{
		{Option: "A", Count: 1},
		{Option: "B", Count: 2},
		{Option: "C", Count: 0},
	}, qs.Data, "one response may land in several buckets")
}

func TestAggregateRating(t *testing.T) {
	survey := model.Survey{
		Questions: []model.Question{{ID: "q1", Type: model.TypeRating}},
	}

	t.Run("five fixed buckets and a bounded average", func(t *testing.T) {
		responses := []model.SurveyResponse{
			response(model.Answer{QuestionID: "q1", Value: model.StringValue("5")}),
			response(model.Answer{QuestionID: "q1", Value: model.StringValue("4")}),
			response(model.Answer{QuestionID: "q1", Value: model.StringValue("4")}),
		}

		qs := stats.Aggregate(survey, responses).QuestionStats[0]
		require.Len(t, qs.Data, 5)
		assert.Equal(t, model.Bucket{Rating: 4, Count: 2}, qs.Data[3])
		assert.Equal(t, model.Bucket{Rating: 5, Count: 1}, qs.Data[4])

		avg := stats.Average(qs)
		assert.InDelta(t, 4.3, avg, 0.001)
		assert.GreaterOrEqual(t, avg, 1.0)
		assert.LessOrEqual(t, avg, 5.0)
	})

	t.Run("no responses reports zero, never NaN", func(t *testing.T) {
		qs := stats.Aggregate(survey, nil).QuestionStats[0]
		assert.Zero(t, stats.Average(qs))
	})

	t.Run("out of range values are ignored", func(t *testing.T) {
		responses := []model.SurveyResponse{
			response(model.Answer{QuestionID: "q1", Value: model.StringValue("9")}),
			response(model.Answer{QuestionID: "q1", Value: model.StringValue("bad")}),
		}
		qs := stats.Aggregate(survey, responses).QuestionStats[0]
		assert.Zero(t, qs.Responses)
	})
}

func TestAggregateTextCountsOnly(t *testing.T) {
	survey := model.Survey{
		Questions: []model.Question{{ID: "q1", Type: model.TypeTextarea}},
	}
	responses := []model.SurveyResponse{
		response(model.Answer{QuestionID: "q1", Value: model.StringValue("me gustó")}),
		response(model.Answer{QuestionID: "q1", Value: model.StringValue("")}),
	}

	qs := stats.Aggregate(survey, responses).QuestionStats[0]
	assert.Equal(t, 1, qs.Responses)
	assert.Empty(t, qs.Data)
}

func TestQuestionStatsFollowDisplayOrder(t *testing.T) {
	survey := model.Survey{
		Questions: []model.Question{
			{ID: "q-b", Type: model.TypeText, Order: 1},
			{ID: "q-a", Type: model.TypeText, Order: 0},
		},
	}
	res := stats.Aggregate(survey, nil)
	require.Len(t, res.QuestionStats, 2)
	assert.Equal(t, "q-a", res.QuestionStats[0].QuestionID)
	assert.Equal(t, "q-b", res.QuestionStats[1].QuestionID)
}

func TestMergeRemote(t *testing.T) {
	survey := model.Survey{Questions: []model.Question{{ID: "q1", Type: model.TypeText}}}
	local := stats.Aggregate(survey, []model.SurveyResponse{response()})

	merged := stats.MergeRemote(local, model.SurveyStats{
		TotalResponses: 40,
		CompletionRate: 85,
		AverageTime:    3.5,
	})
	assert.True(t, merged.RemoteAvailable)
	assert.Equal(t, 40, merged.TotalResponses, "the service sees every response")
	assert.Equal(t, 85.0, merged.CompletionRate)
	assert.Equal(t, 3.5, merged.AverageTime)
}
