package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrPlanNotFound       = errors.New("travel plan not found")
	ErrPlanContentCorrupt = errors.New("stored plan content is not valid")
	ErrGenerationFailed   = errors.New("plan generation failed")
	ErrAdjustmentFailed   = errors.New("plan adjustment failed")
	ErrWeatherService     = errors.New("weather service error")
)
