package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/dev-callsign-hawk/diet-wise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGoal() *models.Goal {
	return &models.Goal{
		GoalType:        models.GoalTypeWeightLoss,
		CurrentWeightKg: 80,
		TargetWeightKg:  70,
		AgeYears:        30,
		DietPreference:  models.DietNonVegetarian,
		DurationWeeks:   10,
	}
}

func envelope(text string) geminiResponse {
	var out geminiResponse
	out.Candidates = []struct {
		Content geminiContent `json:"content"`
	}{
		{Content: geminiContent{Parts: []geminiPart{{Text: text}}}},
	}
	return out
}

func fakeProvider(t *testing.T, hits *int64, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.NotEmpty(t, req.Contents[0].Parts)

		handler(w, r)
	}))
}

func TestGenerateReturnsParsedPlan(t *testing.T) {
	var hits int64
	srv := fakeProvider(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(envelope(validPlanJSON))
	})
	defer srv.Close()

	svc := NewPlanService(PlanConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "gemini-2.0-flash"})
	plan, err := svc.Generate(testGoal())
	require.NoError(t, err)

	assert.Equal(t, models.PlanSourceGenerated, plan.Source)
	assert.Equal(t, 1800, plan.DailyCalories)
	assert.EqualValues(t, 1, hits)
}

func TestGenerateFallsBackOnMalformedPlanBody(t *testing.T) {
	var hits int64
	srv := fakeProvider(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(envelope("sorry, no JSON today"))
	})
	defer srv.Close()

	svc := NewPlanService(PlanConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "gemini-2.0-flash"})
	plan, err := svc.Generate(testGoal())
	require.NoError(t, err)

	// Malformed-but-present output is recovered, not surfaced.
	assert.Equal(t, models.PlanSourceFallback, plan.Source)
	// Fallback target comes from the calorie model: loss of 10 kg over 10
	// weeks at age 30 gives 1100.
	assert.Equal(t, 1100, plan.DailyCalories)
}

func TestGenerateBadStatusIsProviderError(t *testing.T) {
	var hits int64
	srv := fakeProvider(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})
	defer srv.Close()

	svc := NewPlanService(PlanConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "gemini-2.0-flash"})
	_, err := svc.Generate(testGoal())

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusTooManyRequests, pe.StatusCode)
}

func TestGenerateEmptyEnvelopeIsProviderError(t *testing.T) {
	var hits int64
	srv := fakeProvider(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	})
	defer srv.Close()

	svc := NewPlanService(PlanConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "gemini-2.0-flash"})
	_, err := svc.Generate(testGoal())

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Message, "no candidates")
}

func TestGenerateNonJSONBodyIsProviderError(t *testing.T) {
	var hits int64
	srv := fakeProvider(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	})
	defer srv.Close()

	svc := NewPlanService(PlanConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "gemini-2.0-flash"})
	_, err := svc.Generate(testGoal())

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Message, "envelope")
}

func TestGenerateWithoutKeyMakesNoCall(t *testing.T) {
	var hits int64
	srv := fakeProvider(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(envelope(validPlanJSON))
	})
	defer srv.Close()

	svc := NewPlanService(PlanConfig{APIKey: "", BaseURL: srv.URL, Model: "gemini-2.0-flash"})
	_, err := svc.Generate(testGoal())

	assert.True(t, errors.Is(err, ErrNoAPIKey))
	assert.EqualValues(t, 0, hits)
}

func TestGenerateTwiceMakesTwoCalls(t *testing.T) {
	var hits int64
	srv := fakeProvider(t, &hits, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(envelope(validPlanJSON))
	})
	defer srv.Close()

	svc := NewPlanService(PlanConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "gemini-2.0-flash"})

	_, err := svc.Generate(testGoal())
	require.NoError(t, err)
	_, err = svc.Generate(testGoal())
	require.NoError(t, err)

	// no caching or dedup of identical submissions
	assert.EqualValues(t, 2, hits)
}

func TestGenerateInvalidGoalParameters(t *testing.T) {
	var hits int64
	srv := fakeProvider(t, &hits, func(w http.ResponseWriter, r *http.Request) {})
	defer srv.Close()

	goal := testGoal()
	goal.DurationWeeks = 0

	svc := NewPlanService(PlanConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "gemini-2.0-flash"})
	_, err := svc.Generate(goal)

	assert.Error(t, err)
	assert.EqualValues(t, 0, hits)
}
