package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"tripgen/internal/models/request_models"
	"tripgen/internal/models/response_models"
	"tripgen/internal/repositories"
	"tripgen/pkg/utils"
)

const (
	planSystemPrompt   = "You are a professional travel planner who excels at building detailed travel itineraries."
	adjustSystemPrompt = "You are a professional travel planner who excels at adjusting travel itineraries based on live conditions."

	// Fixed generation settings. Temperature trades determinism against
	// variety and is deliberately not tunable by callers.
	planMaxTokens   = 2000
	planTemperature = 0.7
)

const (
	AdjustTypeWeather = "weather"
	AdjustTypeCrowd   = "crowd"
)

type PlanServiceInterface interface {
	ReceiveDemand(ctx context.Context, req request_models.DemandRequest) (*response_models.DemandResponse, error)
	GeneratePlan(ctx context.Context, req request_models.DemandRequest) (*response_models.GeneratedPlanResponse, error)
	AdjustPlan(ctx context.Context, req request_models.AdjustPlanRequest) (*response_models.AdjustedPlanResponse, error)
}

type PlanService struct {
	demandRepo    repositories.IDemandRepository
	planRepo      repositories.IPlanRepository
	chatClient    utils.ChatClientInterface
	weatherClient utils.WeatherClientInterface
}

func NewPlanService(
	demandRepo repositories.IDemandRepository,
	planRepo repositories.IPlanRepository,
	chatClient utils.ChatClientInterface,
	weatherClient utils.WeatherClientInterface,
) PlanServiceInterface {
	return &PlanService{
		demandRepo:    demandRepo,
		planRepo:      planRepo,
		chatClient:    chatClient,
		weatherClient: weatherClient,
	}
}

// ReceiveDemand persists a travel demand without generating anything.
func (s *PlanService) ReceiveDemand(ctx context.Context, req request_models.DemandRequest) (*response_models.DemandResponse, error) {
	demandID, err := s.demandRepo.InsertDemand(ctx, req.Scene, req.Days, *req.Budget, req.Interest, *req.Demand)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return &response_models.DemandResponse{
		DemandID: demandID,
		Scene:    req.Scene,
		Days:     req.Days,
		Budget:   *req.Budget,
		Interest: req.Interest,
		Demand:   *req.Demand,
	}, nil
}

// GeneratePlan persists the demand, asks the generative backend for an
// itinerary and stores whatever document came back, structured or degraded.
// A backend failure aborts before any plan row is written.
func (s *PlanService) GeneratePlan(ctx context.Context, req request_models.DemandRequest) (*response_models.GeneratedPlanResponse, error) {
	demandID, err := s.demandRepo.InsertDemand(ctx, req.Scene, req.Days, *req.Budget, req.Interest, *req.Demand)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	prompt := buildGenerationPrompt(req.Scene, req.Days, *req.Budget, req.Interest, *req.Demand)

	text, err := s.chatClient.Complete(ctx, planSystemPrompt, prompt, planMaxTokens, planTemperature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	doc := response_models.ParseModelOutput(text)
	if doc.Degraded() {
		log.Printf("Plan output for demand %d did not parse as itinerary JSON, keeping raw text", demandID)
	}

	planID, err := s.storePlan(ctx, demandID, doc)
	if err != nil {
		return nil, err
	}

	return &response_models.GeneratedPlanResponse{
		PlanID:   planID,
		DemandID: demandID,
		Plan:     doc,
	}, nil
}

// AdjustPlan regenerates a stored plan under a weather or crowding signal.
// The result is appended as a new plan row against the original demand; the
// source row is never touched.
func (s *PlanService) AdjustPlan(ctx context.Context, req request_models.AdjustPlanRequest) (*response_models.AdjustedPlanResponse, error) {
	record, err := s.planRepo.GetPlanWithDemand(ctx, req.PlanID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if record == nil {
		return nil, utils.ErrPlanNotFound
	}

	var original response_models.PlanDocument
	if err := json.Unmarshal([]byte(record.PlanContent), &original); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrPlanContentCorrupt, err)
	}

	adjusted, err := s.adjustDocument(ctx, original, req.City, req.AdjustType)
	if err != nil {
		return nil, err
	}

	newPlanID, err := s.storePlan(ctx, record.DemandID, adjusted)
	if err != nil {
		return nil, err
	}

	return &response_models.AdjustedPlanResponse{
		OriginalPlanID: req.PlanID,
		NewPlanID:      newPlanID,
		AdjustType:     req.AdjustType,
		AdjustedPlan:   adjusted,
	}, nil
}

// adjustDocument runs the adjustment engine proper: weather adjustments fetch
// the forecast first and give up when the gateway fails, crowd adjustments
// never call it.
func (s *PlanService) adjustDocument(ctx context.Context, original response_models.PlanDocument, city, adjustType string) (response_models.PlanDocument, error) {
	originalJSON, err := json.Marshal(original)
	if err != nil {
		return response_models.PlanDocument{}, fmt.Errorf("%w: %v", utils.ErrAdjustmentFailed, err)
	}

	var prompt string
	switch adjustType {
	case AdjustTypeWeather:
		weather, err := s.weatherClient.GetWeather(ctx, city)
		if err != nil {
			return response_models.PlanDocument{}, err
		}
		prompt = buildWeatherAdjustPrompt(string(originalJSON), string(weather))
	case AdjustTypeCrowd:
		prompt = buildCrowdAdjustPrompt(string(originalJSON))
	default:
		// Callers validate adjust_type before reaching this engine.
		return response_models.PlanDocument{}, fmt.Errorf("%w: unknown adjust type %q", utils.ErrAdjustmentFailed, adjustType)
	}

	text, err := s.chatClient.Complete(ctx, adjustSystemPrompt, prompt, planMaxTokens, planTemperature)
	if err != nil {
		return response_models.PlanDocument{}, fmt.Errorf("%w: %v", utils.ErrAdjustmentFailed, err)
	}

	doc := response_models.ParseModelOutput(text)
	if doc.Degraded() {
		log.Printf("Adjusted plan output did not parse as itinerary JSON, keeping raw text")
	}
	return doc, nil
}

func (s *PlanService) storePlan(ctx context.Context, demandID uint, doc response_models.PlanDocument) (uint, error) {
	content, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	planID, err := s.planRepo.InsertPlan(ctx, demandID, string(content))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return planID, nil
}

// buildGenerationPrompt embeds the five demand parameters and spells out the
// exact itinerary schema the model must emit.
func buildGenerationPrompt(scene string, days int, budget float64, interest, demand string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "As a planner for a %s, build an itinerary for %d day(s) on a budget of %.2f, focused on %s and covering: %s.\n\n",
		scene, days, budget, interest, demand)

	b.WriteString("Return the travel plan as JSON in exactly this shape:\n")
	fmt.Fprintf(&b, `{
    "title": "plan title",
    "total_days": %d,
    "total_budget": %.2f,
    "daily_plans": [
        {
            "day": 1,
            "date": "Day 1",
            "schedule": [
                {
                    "time": "09:00-11:00",
                    "attraction": "attraction name",
                    "transportation": "how to get there",
                    "dining": "meal arrangement",
                    "budget": 200
                }
            ],
            "daily_total": 500
        }
    ],
    "tips": ["travel tip 1", "travel tip 2"],
    "special_notes": "notes related to: %s"
}`, days, budget, demand)

	b.WriteString("\n\nMake sure that:\n")
	b.WriteString("1. Every schedule entry includes time, attraction, transportation, dining and budget\n")
	fmt.Fprintf(&b, "2. Total spend stays within %.2f\n", budget)
	fmt.Fprintf(&b, "3. The plan reflects the interest in %s\n", interest)
	fmt.Fprintf(&b, "4. The special demand is satisfied: %s\n", demand)
	b.WriteString("5. The response is a single well-formed JSON document\n")

	return b.String()
}

func buildWeatherAdjustPrompt(originalJSON, weatherJSON string) string {
	var b strings.Builder

	b.WriteString("Adjust the travel plan below based on this weather information.\n\n")
	fmt.Fprintf(&b, "Weather data: %s\n\n", weatherJSON)
	fmt.Fprintf(&b, "Original plan: %s\n\n", originalJSON)

	b.WriteString("Adjustment rules:\n")
	b.WriteString("1. On rainy days prefer indoor attractions\n")
	b.WriteString("2. In fair weather prefer outdoor activities\n")
	b.WriteString("3. Adapt clothing advice to the temperature\n")
	b.WriteString("4. Keep the original budget and day count unchanged\n\n")
	b.WriteString("Return the complete adjusted plan as JSON in the same shape as the original.\n")

	return b.String()
}

func buildCrowdAdjustPrompt(originalJSON string) string {
	var b strings.Builder

	b.WriteString("Adjust the travel plan below based on expected crowding.\n\n")
	fmt.Fprintf(&b, "Original plan: %s\n\n", originalJSON)

	b.WriteString("Adjustment rules:\n")
	b.WriteString("1. Avoid peak hours at popular attractions\n")
	b.WriteString("2. Substitute less crowded but distinctive alternatives\n")
	b.WriteString("3. Rearrange visiting times where it helps\n")
	b.WriteString("4. Keep the original budget and day count unchanged\n\n")
	b.WriteString("Return the complete adjusted plan as JSON in the same shape as the original.\n")

	return b.String()
}
