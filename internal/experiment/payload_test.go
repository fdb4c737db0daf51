package experiment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(ws []int) int {
	total := 0
	for _, w := range ws {
		total += w
	}
	return total
}

func TestWeights(t *testing.T) {
	assert.Equal(t, []int{2500, 2500, 2500, 2500}, Weights(4))
	assert.Equal(t, []int{3333, 3333, 3334}, Weights(3))
	assert.Equal(t, []int{10000}, Weights(1))
	assert.Nil(t, Weights(0))

	for slots := 1; slots <= 25; slots++ {
		assert.Equal(t, totalWeight, sum(Weights(slots)), "slots=%d", slots)
	}

	// The largest accepted variation count still gives every arm weight.
	ws := Weights(10000)
	assert.Equal(t, totalWeight, sum(ws))
	for _, w := range ws {
		require.GreaterOrEqual(t, w, 1)
	}
}

func TestBuildPayload(t *testing.T) {
	p := BuildPayload(PayloadInput{
		Name:        "[T-1][a/b][Hero]",
		Description: "desc",
		ProjectID:   99,
		TestType:    "a/b",
		TestURL:     "https://shop.test/",
		Variations:  2,
	})

	assert.Equal(t, "everyone", p.AudienceConditions)
	assert.Equal(t, "not_started", p.Status)
	assert.Equal(t, 10000, p.TrafficAllocation)
	assert.Equal(t, int64(99), p.ProjectID)
	assert.Empty(t, p.Changes)
	assert.Empty(t, p.Metrics)
	assert.Equal(t, "immediate", p.URLTargeting.ActivationType)
	assert.Equal(t, "https://shop.test/", p.URLTargeting.EditURL)
	assert.Equal(t,
		`["and", ["or", {"match_type": "simple", "type": "url", "value": "https://shop.test/"}]]`,
		p.URLTargeting.Conditions)

	if assert.Len(t, p.Variations, 3) {
		assert.Equal(t, "Original", p.Variations[0].Name)
		assert.Equal(t, "Variation #1", p.Variations[1].Name)
		assert.Equal(t, "Variation #2", p.Variations[2].Name)
		assert.Equal(t, 3334, p.Variations[2].Weight)
		for _, v := range p.Variations {
			assert.Equal(t, "active", v.Status)
			assert.NotNil(t, v.Actions)
		}
	}
}

func TestAudienceConditions(t *testing.T) {
	got := audienceConditions(map[string]int64{"returning": 2, "mobile": 1, "uk": 3})
	assert.Equal(t, `["and", {"audience_id": 1}, {"audience_id": 2}, {"audience_id": 3}]`, got)
}

func TestBuildPayloadConditionsEscapeURL(t *testing.T) {
	url := `https://shop.test/search?q="shoes"&path=a\b`
	p := BuildPayload(PayloadInput{TestURL: url, Variations: 1})

	var conditions []interface{}
	require.NoError(t, json.Unmarshal([]byte(p.URLTargeting.Conditions), &conditions))
	require.Len(t, conditions, 2)
	or, ok := conditions[1].([]interface{})
	require.True(t, ok)
	match, ok := or[1].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, url, match["value"])
	assert.Contains(t, p.URLTargeting.Conditions, "&path")
}

func TestPlaceholder(t *testing.T) {
	p := BuildPayload(PayloadInput{Name: "[T-1][a/b][Hero]", Variations: 2})
	data := Placeholder(p)

	assert.Zero(t, data.ID)
	assert.Equal(t, "[T-1][a/b][Hero]", data.Name)
	assert.Equal(t, 2, data.VariationCount())
	assert.Equal(t, "Variation #2", data.Variations[2].Name)
}
