package plan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripgen/internal/api/controllers"
	"tripgen/internal/repositories"
	"tripgen/internal/services"
	"tripgen/pkg/utils"
)

var Module = fx.Provide(
	provideDemandRepo,
	providePlanRepo,
	providePlanService,
	providePlanController)

func provideDemandRepo(db *gorm.DB) repositories.IDemandRepository {
	return repositories.NewDemandRepository(db)
}

func providePlanRepo(db *gorm.DB) repositories.IPlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(
	demandRepo repositories.IDemandRepository,
	planRepo repositories.IPlanRepository,
	chatClient utils.ChatClientInterface,
	weatherClient utils.WeatherClientInterface,
) services.PlanServiceInterface {
	return services.NewPlanService(demandRepo, planRepo, chatClient, weatherClient)
}

func providePlanController(planService services.PlanServiceInterface) *controllers.PlanController {
	return controllers.NewPlanController(planService)
}
