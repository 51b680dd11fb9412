package response_models

import (
	"encoding/json"
	"strings"
)

type ScheduleEntry struct {
	Time           string  `json:"time"`
	Attraction     string  `json:"attraction"`
	Transportation string  `json:"transportation"`
	Dining         string  `json:"dining"`
	Budget         float64 `json:"budget"`
}

type DailyPlan struct {
	Day        int             `json:"day"`
	Date       string          `json:"date"`
	Schedule   []ScheduleEntry `json:"schedule"`
	DailyTotal float64         `json:"daily_total"`
}

// Itinerary is the structured schema the model is asked to emit.
type Itinerary struct {
	Title        string      `json:"title"`
	TotalDays    int         `json:"total_days"`
	TotalBudget  float64     `json:"total_budget"`
	DailyPlans   []DailyPlan `json:"daily_plans"`
	Tips         []string    `json:"tips"`
	SpecialNotes string      `json:"special_notes"`
}

// PlanDocument is either a parsed Itinerary or, when the model output could
// not be parsed, the raw text it produced. Exactly one side is set.
type PlanDocument struct {
	Structured *Itinerary
	Raw        string
}

// Degraded reports whether structural parsing of the model output failed and
// only the raw text survived.
func (d PlanDocument) Degraded() bool {
	return d.Structured == nil
}

// degradedContent is the persisted shape of a degraded document.
type degradedContent struct {
	RawContent string `json:"raw_content"`
}

func (d PlanDocument) MarshalJSON() ([]byte, error) {
	if d.Structured != nil {
		return json.Marshal(d.Structured)
	}
	return json.Marshal(degradedContent{RawContent: d.Raw})
}

func (d *PlanDocument) UnmarshalJSON(data []byte) error {
	var degraded struct {
		RawContent *string `json:"raw_content"`
	}
	if err := json.Unmarshal(data, &degraded); err == nil && degraded.RawContent != nil {
		d.Structured = nil
		d.Raw = *degraded.RawContent
		return nil
	}

	var itinerary Itinerary
	if err := json.Unmarshal(data, &itinerary); err != nil {
		return err
	}
	d.Structured = &itinerary
	d.Raw = ""
	return nil
}

// ParseModelOutput coerces raw model text into a PlanDocument. Output that is
// not valid itinerary JSON degrades to the raw form instead of failing, so
// the caller always gets content back.
func ParseModelOutput(raw string) PlanDocument {
	cleaned := cleanModelJSON(raw)

	var itinerary Itinerary
	if err := json.Unmarshal([]byte(cleaned), &itinerary); err != nil {
		return PlanDocument{Raw: raw}
	}
	return PlanDocument{Structured: &itinerary}
}

// cleanModelJSON strips the markdown fences models like to wrap JSON in.
func cleanModelJSON(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

type GeneratedPlanResponse struct {
	PlanID   uint         `json:"plan_id"`
	DemandID uint         `json:"demand_id"`
	Plan     PlanDocument `json:"plan"`
}

type AdjustedPlanResponse struct {
	OriginalPlanID uint         `json:"original_plan_id"`
	NewPlanID      uint         `json:"new_plan_id"`
	AdjustType     string       `json:"adjust_type"`
	AdjustedPlan   PlanDocument `json:"adjusted_plan"`
}

type DemandResponse struct {
	DemandID uint    `json:"demand_id"`
	Scene    string  `json:"scene"`
	Days     int     `json:"days"`
	Budget   float64 `json:"budget"`
	Interest string  `json:"interest"`
	Demand   string  `json:"demand"`
}
