package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Condition is one clause of a parsed compound alert.
type Condition struct {
	Metric   string  `json:"metric"`
	Operator string  `json:"operator"`
	Value    float64 `json:"value"`
}

// AlertSpec is the structured form of a natural-language alert request.
type AlertSpec struct {
	Symbol     string      `json:"symbol"`
	Summary    string      `json:"summary"`
	Conditions []Condition `json:"conditions"`
}

const parseSystemPrompt = `You are an alert condition parser for a crypto price bot.

RULES (MANDATORY):
- Output MUST be valid JSON ONLY
- No explanations
- No extra fields

ALLOWED VALUES:
metric: ["price", "rsi", "volume"]
operator: ["above", "below"]

OUTPUT FORMAT (STRICT):
{
  "symbol": "<UPPERCASE TICKER>",
  "summary": "<one short sentence>",
  "conditions": [
    {"metric": "price | rsi | volume", "operator": "above | below", "value": <number>}
  ]
}`

var (
	allowedMetrics   = map[string]bool{"price": true, "rsi": true, "volume": true}
	allowedOperators = map[string]bool{"above": true, "below": true}
)

// ParseAlert turns a natural-language request like "alert me when BTC is
// above 50000 and RSI drops below 30" into a validated AlertSpec.
func ParseAlert(ctx context.Context, client *Client, text string) (*AlertSpec, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("alert text is required")
	}

	raw, err := client.Complete(ctx, parseSystemPrompt, text)
	if err != nil {
		return nil, fmt.Errorf("parse alert: %w", err)
	}

	spec, err := decodeSpec(raw)
	if err != nil {
		return nil, err
	}
	if err := ValidateSpec(spec); err != nil {
		return nil, err
	}
	return spec, nil
}

// decodeSpec unmarshals the model output, tolerating a fenced code block.
func decodeSpec(raw string) (*AlertSpec, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
		raw = strings.TrimSpace(raw)
	}
	var spec AlertSpec
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		return nil, fmt.Errorf("decode alert spec: %w", err)
	}
	return &spec, nil
}

// ValidateSpec rejects specs with unknown metrics or operators, a missing
// symbol, or no conditions.
func ValidateSpec(spec *AlertSpec) error {
	if spec == nil {
		return fmt.Errorf("nil alert spec")
	}
	spec.Symbol = strings.ToUpper(strings.TrimSpace(spec.Symbol))
	if spec.Symbol == "" {
		return fmt.Errorf("alert spec missing symbol")
	}
	if len(spec.Conditions) == 0 {
		return fmt.Errorf("alert spec has no conditions")
	}
	for i := range spec.Conditions {
		c := &spec.Conditions[i]
		c.Metric = strings.ToLower(strings.TrimSpace(c.Metric))
		c.Operator = strings.ToLower(strings.TrimSpace(c.Operator))
		if !allowedMetrics[c.Metric] {
			return fmt.Errorf("condition %d: unknown metric %q", i, c.Metric)
		}
		if !allowedOperators[c.Operator] {
			return fmt.Errorf("condition %d: unknown operator %q", i, c.Operator)
		}
	}
	return nil
}

// ConditionsJSON renders the condition list for the ai_alerts table.
func (s *AlertSpec) ConditionsJSON() (string, error) {
	b, err := json.Marshal(s.Conditions)
	if err != nil {
		return "", fmt.Errorf("marshal conditions: %w", err)
	}
	return string(b), nil
}
