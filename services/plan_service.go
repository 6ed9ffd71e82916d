package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dev-callsign-hawk/diet-wise/models"
	"github.com/dev-callsign-hawk/diet-wise/utils"
)

// ErrNoAPIKey means the service was constructed without a provider
// credential. Nothing is sent over the network in that case.
var ErrNoAPIKey = errors.New("GEMINI_API_KEY not set")

// ProviderError is returned when the provider answers with a bad status or a
// response body missing the expected envelope.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("gemini api error (%d): %s", e.StatusCode, e.Message)
}

type PlanConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

func PlanConfigFromEnv() PlanConfig {
	cfg := PlanConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: os.Getenv("GEMINI_BASE_URL"),
		Model:   os.Getenv("GEMINI_MODEL"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	return cfg
}

type PlanService struct {
	cfg    PlanConfig
	client *http.Client
}

func NewPlanService(cfg PlanConfig) *PlanService {
	return &PlanService{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate computes the calorie target, asks the provider for a plan and
// parses the reply. One provider call per invocation, no retries, no caching.
// The parser cannot fail, so after a successful call this always returns a
// plan; a malformed plan body comes back as the fallback plan, not an error.
func (s *PlanService) Generate(goal *models.Goal) (*GeneratedPlan, error) {
	if s.cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	target, err := utils.ComputeTargetCalories(
		goal.GoalType, goal.CurrentWeightKg, goal.TargetWeightKg, goal.AgeYears, goal.DurationWeeks)
	if err != nil {
		return nil, err
	}

	raw, err := s.complete(BuildPlanPrompt(goal, target))
	if err != nil {
		return nil, err
	}

	plan := ParsePlanResponse(raw, target, goal.DietPreference)
	return &plan, nil
}

func (s *PlanService) complete(prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.cfg.BaseURL, s.cfg.Model)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var out geminiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &ProviderError{StatusCode: resp.StatusCode, Message: "unrecognized response envelope"}
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", &ProviderError{StatusCode: resp.StatusCode, Message: "no candidates in response"}
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}
