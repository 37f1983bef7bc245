// README: Tests for reply cleanup, parsing, and shape validation.
package itinerary

import (
	"strings"
	"testing"
)

const wellFormedReply = `{
	"overview": "Three relaxed days across eastern Kyoto.",
	"dayPlans": [
		{"day": 1, "title": "Higashiyama", "activities": ["Kiyomizu-dera", "Sannenzaka", "Gion at dusk"], "cost": 120},
		{"day": 2, "title": "Arashiyama", "activities": ["Bamboo grove", "Tenryu-ji", "Katsura river walk"], "cost": 150},
		{"day": 3, "title": "Central Kyoto", "activities": ["Nijo Castle", "Nishiki Market", "Pontocho dinner"], "cost": 180}
	],
	"weather": [
		{"day": "Mon", "temp": 22, "condition": "Sunny"},
		{"day": "Tue", "temp": 19, "condition": "Cloudy"},
		{"day": "Wed", "temp": 24, "condition": "Clear"},
		{"day": "Thu", "temp": 16, "condition": "Rainy"},
		{"day": "Fri", "temp": 21, "condition": "Sunny"}
	],
	"costBreakdown": [
		{"label": "Accommodation", "amount": 300},
		{"label": "Food & Dining", "amount": 250},
		{"label": "Transport", "amount": 100},
		{"label": "Activities", "amount": 150},
		{"label": "Shopping & Misc", "amount": 100}
	],
	"places": [
		{"name": "Fushimi Inari", "rating": 4.8, "type": "Landmark"},
		{"name": "Kyoto National Museum", "rating": 4.5, "type": "Museum"}
	],
	"tips": ["Carry cash", "Buses get crowded"]
}`

func TestCleanJSONText_StripsFences(t *testing.T) {
	got := cleanJSONText("```json\n{\"a\":1}\n```")
	if got != `{"a":1}` {
		t.Errorf("expected fences stripped, got %q", got)
	}
}

func TestCleanJSONText_IdempotentOnCleanInput(t *testing.T) {
	got := cleanJSONText(`{"a":1}`)
	if got != `{"a":1}` {
		t.Errorf("expected clean input unchanged, got %q", got)
	}
}

func TestParseReply_WellFormed(t *testing.T) {
	it, err := ParseReply(wellFormedReply, 3)
	if err != nil {
		t.Fatalf("ParseReply: %v", err)
	}
	if len(it.DayPlans) != 3 {
		t.Errorf("expected 3 day plans, got %d", len(it.DayPlans))
	}
	if it.DayPlans[1].Day != 2 {
		t.Errorf("expected day 2 at position 2, got %d", it.DayPlans[1].Day)
	}
	if len(it.Weather) != ForecastDays {
		t.Errorf("expected %d weather entries, got %d", ForecastDays, len(it.Weather))
	}
	if len(it.Tips) != 2 {
		t.Errorf("expected tips to survive parsing, got %d", len(it.Tips))
	}
}

func TestParseReply_FencedPayload(t *testing.T) {
	it, err := ParseReply("```json\n"+wellFormedReply+"\n```", 3)
	if err != nil {
		t.Fatalf("ParseReply fenced: %v", err)
	}
	if len(it.DayPlans) != 3 {
		t.Errorf("expected 3 day plans, got %d", len(it.DayPlans))
	}
}

func TestParseReply_NotJSON(t *testing.T) {
	_, err := ParseReply("not valid json", 3)
	kind, ok := KindOf(err)
	if !ok || kind != KindMalformedPayload {
		t.Fatalf("expected KindMalformedPayload, got %v", err)
	}
	// The raw upstream text must not leak into the message.
	if strings.Contains(err.Error(), "not valid json") {
		t.Errorf("error message leaks upstream text: %q", err.Error())
	}
}

func TestParseReply_WrongDayCount(t *testing.T) {
	_, err := ParseReply(wellFormedReply, 5)
	kind, ok := KindOf(err)
	if !ok || kind != KindMalformedItinerary {
		t.Fatalf("expected KindMalformedItinerary, got %v", err)
	}
}

func TestParseReply_DaysOutOfSequence(t *testing.T) {
	reply := strings.Replace(wellFormedReply, `"day": 2`, `"day": 4`, 1)
	_, err := ParseReply(reply, 3)
	kind, ok := KindOf(err)
	if !ok || kind != KindMalformedItinerary {
		t.Fatalf("expected KindMalformedItinerary, got %v", err)
	}
}

func TestParseReply_MissingWeather(t *testing.T) {
	reply := strings.Replace(wellFormedReply, `{"day": "Fri", "temp": 21, "condition": "Sunny"}`, ``, 1)
	reply = strings.Replace(reply, `{"day": "Thu", "temp": 16, "condition": "Rainy"},`, `{"day": "Thu", "temp": 16, "condition": "Rainy"}`, 1)
	_, err := ParseReply(reply, 3)
	kind, ok := KindOf(err)
	if !ok || kind != KindMalformedItinerary {
		t.Fatalf("expected KindMalformedItinerary, got %v", err)
	}
}

func TestParseReply_ClampsRatings(t *testing.T) {
	reply := strings.Replace(wellFormedReply, `"rating": 4.8`, `"rating": 7.2`, 1)
	it, err := ParseReply(reply, 3)
	if err != nil {
		t.Fatalf("ParseReply: %v", err)
	}
	if it.Places[0].Rating != 5 {
		t.Errorf("expected rating clamped to 5, got %v", it.Places[0].Rating)
	}
}
