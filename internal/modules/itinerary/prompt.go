// README: Prompt templates for the itinerary generation call.
package itinerary

import "fmt"

// SystemPrompt pins the model to strict JSON output.
const SystemPrompt = `You are an expert travel planner AI. Generate a detailed, realistic travel itinerary. Always respond with valid JSON only, no markdown, no extra text.`

// UserPrompt embeds the trip request and spells out the exact target JSON
// shape with example values, so the reply can be parsed without a schema
// negotiation step.
func UserPrompt(req TripRequest) string {
	return fmt.Sprintf(`Create a complete travel itinerary for:
- Destination: %s
- Duration: %d days
- Budget: %s %.0f

Return a JSON object with this EXACT structure:
{
  "overview": "2-3 sentence trip overview",
  "dayPlans": [
    {
      "day": 1,
      "title": "Day title",
      "activities": ["activity 1", "activity 2", "activity 3"],
      "cost": 250
    }
  ],
  "weather": [
    { "day": "Mon", "temp": 22, "condition": "Sunny" },
    { "day": "Tue", "temp": 19, "condition": "Cloudy" },
    { "day": "Wed", "temp": 24, "condition": "Clear" },
    { "day": "Thu", "temp": 16, "condition": "Rainy" },
    { "day": "Fri", "temp": 21, "condition": "Sunny" }
  ],
  "costBreakdown": [
    { "label": "Accommodation", "amount": 600 },
    { "label": "Food & Dining", "amount": 400 },
    { "label": "Transport", "amount": 250 },
    { "label": "Activities", "amount": 350 },
    { "label": "Shopping & Misc", "amount": 400 }
  ],
  "places": [
    { "name": "Place name", "rating": 4.8, "type": "Landmark" },
    { "name": "Place name", "rating": 4.7, "type": "Museum" },
    { "name": "Place name", "rating": 4.9, "type": "District" },
    { "name": "Place name", "rating": 4.6, "type": "Restaurant" }
  ],
  "tips": ["Local tip 1", "Local tip 2", "Local tip 3"]
}

Make %d day plans total. Ensure cost breakdown totals approximately %.0f %s. Make all content specific and realistic for %s.`,
		req.Destination, req.Days, req.Currency, req.Budget,
		req.Days, req.Budget, req.Currency, req.Destination)
}
