package response_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleItineraryJSON = `{
	"title": "Three days of food",
	"total_days": 3,
	"total_budget": 1500,
	"daily_plans": [
		{
			"day": 1,
			"date": "Day 1",
			"schedule": [
				{
					"time": "09:00-11:00",
					"attraction": "Old town market",
					"transportation": "metro",
					"dining": "street breakfast",
					"budget": 120
				}
			],
			"daily_total": 480
		}
	],
	"tips": ["carry cash", "book ahead"],
	"special_notes": "student discount available at most museums"
}`

func TestParseModelOutput(t *testing.T) {
	t.Run("valid itinerary JSON parses as structured", func(t *testing.T) {
		doc := ParseModelOutput(sampleItineraryJSON)
		require.False(t, doc.Degraded())
		assert.Equal(t, "Three days of food", doc.Structured.Title)
		assert.Equal(t, 3, doc.Structured.TotalDays)
		assert.Len(t, doc.Structured.DailyPlans, 1)
		assert.Equal(t, "Old town market", doc.Structured.DailyPlans[0].Schedule[0].Attraction)
	})

	t.Run("markdown fences are stripped before parsing", func(t *testing.T) {
		doc := ParseModelOutput("```json\n" + sampleItineraryJSON + "\n```")
		require.False(t, doc.Degraded())
		assert.Equal(t, 3, doc.Structured.TotalDays)
	})

	t.Run("plain text degrades to raw", func(t *testing.T) {
		text := "Day 1: wander around, eat noodles.\nDay 2: museum."
		doc := ParseModelOutput(text)
		require.True(t, doc.Degraded())
		assert.Equal(t, text, doc.Raw)
	})

	t.Run("JSON array degrades to raw", func(t *testing.T) {
		doc := ParseModelOutput(`["not", "an", "itinerary"]`)
		assert.True(t, doc.Degraded())
	})
}

func TestPlanDocument_JSONRoundTrip(t *testing.T) {
	t.Run("structured document round trips", func(t *testing.T) {
		original := ParseModelOutput(sampleItineraryJSON)
		require.False(t, original.Degraded())

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var restored PlanDocument
		require.NoError(t, json.Unmarshal(data, &restored))
		require.False(t, restored.Degraded())
		assert.Equal(t, original.Structured, restored.Structured)
	})

	t.Run("degraded document persists as raw_content", func(t *testing.T) {
		doc := PlanDocument{Raw: "free-form plan text"}

		data, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.JSONEq(t, `{"raw_content":"free-form plan text"}`, string(data))

		var restored PlanDocument
		require.NoError(t, json.Unmarshal(data, &restored))
		assert.True(t, restored.Degraded())
		assert.Equal(t, "free-form plan text", restored.Raw)
	})

	t.Run("non-object content fails to unmarshal", func(t *testing.T) {
		var doc PlanDocument
		assert.Error(t, json.Unmarshal([]byte(`"just a string"`), &doc))
	})
}
