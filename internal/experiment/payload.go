package experiment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

const totalWeight = 10000

// TestTypes are the experiment types the API accepts.
var TestTypes = []string{"a/b", "feature", "multivariant", "personalization", "multiarmed_bandit"}

// PayloadInput holds the values a new experiment is built from.
type PayloadInput struct {
	Name        string
	Description string
	ProjectID   int64
	TestType    string
	TestURL     string
	Variations  int
	Audiences   map[string]int64
}

// Payload is the create-experiment request body.
type Payload struct {
	AudienceConditions string             `json:"audience_conditions"`
	Changes            []interface{}      `json:"changes"`
	Metrics            []interface{}      `json:"metrics"`
	Description        string             `json:"description"`
	Name               string             `json:"name"`
	ProjectID          int64              `json:"project_id"`
	Status             string             `json:"status"`
	TrafficAllocation  int                `json:"traffic_allocation"`
	Type               string             `json:"type"`
	URLTargeting       URLTargeting       `json:"url_targeting"`
	Variations         []PayloadVariation `json:"variations"`
}

// URLTargeting activates the experiment on one URL.
type URLTargeting struct {
	ActivationType string `json:"activation_type"`
	EditURL        string `json:"edit_url"`
	Conditions     string `json:"conditions"`
}

// PayloadVariation is one weighted arm.
type PayloadVariation struct {
	Actions []interface{} `json:"actions"`
	Name    string        `json:"name"`
	Status  string        `json:"status"`
	Weight  int           `json:"weight"`
}

// BuildPayload builds a create request with the control arm plus
// in.Variations arms sharing 10000 weight units.
func BuildPayload(in PayloadInput) *Payload {
	return &Payload{
		AudienceConditions: audienceConditions(in.Audiences),
		Changes:            []interface{}{},
		Metrics:            []interface{}{},
		Description:        in.Description,
		Name:               in.Name,
		ProjectID:          in.ProjectID,
		Status:             "not_started",
		TrafficAllocation:  totalWeight,
		Type:               in.TestType,
		URLTargeting: URLTargeting{
			ActivationType: "immediate",
			EditURL:        in.TestURL,
			Conditions: fmt.Sprintf(
				`["and", ["or", {"match_type": "simple", "type": "url", "value": %s}]]`,
				jsonString(in.TestURL)),
		},
		Variations: weightedVariations(in.Variations),
	}
}

// Weights splits 10000 evenly over slots; the last slot takes the remainder.
func Weights(slots int) []int {
	if slots < 1 {
		return nil
	}
	each := totalWeight / slots
	weights := make([]int, slots)
	for i := range weights {
		weights[i] = each
	}
	weights[slots-1] = totalWeight - each*(slots-1)
	return weights
}

func weightedVariations(count int) []PayloadVariation {
	if count < 0 {
		count = 0
	}
	weights := Weights(count + 1)
	out := make([]PayloadVariation, len(weights))
	for i, w := range weights {
		name := "Original"
		if i > 0 {
			name = fmt.Sprintf("Variation #%d", i)
		}
		out[i] = PayloadVariation{Actions: []interface{}{}, Name: name, Status: "active", Weight: w}
	}
	return out
}

// audienceConditions targets everyone, or all configured audiences ordered
// by audience name.
func audienceConditions(audiences map[string]int64) string {
	if len(audiences) == 0 {
		return "everyone"
	}
	names := lo.Keys(audiences)
	sort.Strings(names)
	parts := lo.Map(names, func(name string, _ int) string {
		return fmt.Sprintf(`{"audience_id": %d}`, audiences[name])
	})
	return `["and", ` + strings.Join(parts, ", ") + "]"
}

// jsonString quotes s as a JSON string, leaving HTML characters readable.
func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
