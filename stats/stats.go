// Package stats derives per-question statistics from a survey and its
// responses. Everything here is a pure function over already-fetched data;
// completion rate and average time cannot be derived client-side and are only
// ever copied from the service's own statistics endpoint, never fabricated.
package stats

import (
	"math"
	"sort"
	"strconv"

	"github.com/lauracmd12/Front-Davivienda/model"
)

// Results is the aggregate for the results view. RemoteAvailable is false
// until the service's statistics are merged in; the completion rate and
// average time fields hold nothing meaningful before that and the view must
// present them as unavailable.
type Results struct {
	model.SurveyStats
	RemoteAvailable bool
}

// Aggregate computes a survey's per-question statistics from its responses.
//
// Radio and select buckets count answers equal to each listed option; answers
// referencing options no longer on the question are ignored (the question may
// have been edited after responses were collected). Checkbox buckets count
// membership, so one response may land in several buckets. Rating questions
// get five fixed buckets.
func Aggregate(survey model.Survey, responses []model.SurveyResponse) Results {
	res := Results{}
	res.TotalResponses = len(responses)

	for _, q := range sortedQuestions(survey) {
		qs := model.QuestionStats{
			QuestionID:    q.ID,
			QuestionTitle: q.Title,
			Type:          string(q.Type),
		}

		switch q.Type {
		case model.TypeRadio, model.TypeSelect:
			counts := make(map[string]int, len(q.Options))
			for _, v := range answersTo(q.ID, responses) {
				if v.IsList() || v.Empty() {
					continue
				}
				if optionListed(q.Options, v.Text()) {
					counts[v.Text()]++
					qs.Responses++
				}
			}
			for _, opt := range q.Options {
				qs.Data = append(qs.Data, model.Bucket{Option: opt, Count: counts[opt]})
			}

		case model.TypeCheckbox:
			counts := make(map[string]int, len(q.Options))
			for _, v := range answersTo(q.ID, responses) {
				if !v.IsList() || v.Empty() {
					continue
				}
				qs.Responses++
				for _, opt := range q.Options {
					if v.Contains(opt) {
						counts[opt]++
					}
				}
			}
			for _, opt := range q.Options {
				qs.Data = append(qs.Data, model.Bucket{Option: opt, Count: counts[opt]})
			}

		case model.TypeRating:
			var counts [6]int
			for _, v := range answersTo(q.ID, responses) {
				n, err := strconv.Atoi(v.Text())
				if err != nil || n < 1 || n > 5 {
					continue
				}
				counts[n]++
				qs.Responses++
			}
			for rating := 1; rating <= 5; rating++ {
				qs.Data = append(qs.Data, model.Bucket{Rating: rating, Count: counts[rating]})
			}

		case model.TypeText, model.TypeTextarea:
			for _, v := range answersTo(q.ID, responses) {
				if !v.Empty() {
					qs.Responses++
				}
			}
		}

		res.QuestionStats = append(res.QuestionStats, qs)
	}

	return res
}

// Average returns the mean rating of a rating question's buckets, to one
// decimal place, and 0 when there are no rated responses.
func Average(qs model.QuestionStats) float64 {
	sum, total := 0, 0
	for _, b := range qs.Data {
		sum += b.Rating * b.Count
		total += b.Count
	}
	if total == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(total)*10) / 10
}

// MergeRemote copies the service-computed metrics into the aggregate. The
// remote total wins when present: the service sees every response, a client
// page may not.
func MergeRemote(local Results, remote model.SurveyStats) Results {
	local.CompletionRate = remote.CompletionRate
	local.AverageTime = remote.AverageTime
	if remote.TotalResponses > local.TotalResponses {
		local.TotalResponses = remote.TotalResponses
	}
	local.RemoteAvailable = true
	return local
}

func answersTo(questionID string, responses []model.SurveyResponse) []model.AnswerValue {
	var values []model.AnswerValue
	for _, r := range responses {
		for _, a := range r.Answers {
			if a.QuestionID == questionID {
				values = append(values, a.Value)
				break
			}
		}
	}
	return values
}

func optionListed(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}

func sortedQuestions(survey model.Survey) []model.Question {
	out := make([]model.Question, len(survey.Questions))
	copy(out, survey.Questions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
