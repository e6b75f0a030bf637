package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"royalnano/internal/api/controllers"
	"royalnano/internal/repositories"
	"royalnano/internal/services"
)

var Module = fx.Provide(
	provideAdminRepo, provideAdminService, provideAdminController,
)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepositoryInterface {
	return repositories.NewAdminRepository(db)
}

func provideAdminService(
	adminRepo repositories.AdminRepositoryInterface,
	reviewRepo repositories.ReviewRepositoryInterface,
	contactRepo repositories.ContactRepositoryInterface,
) services.AdminServiceInterface {
	return services.NewAdminService(adminRepo, reviewRepo, contactRepo)
}

func provideAdminController(adminService services.AdminServiceInterface) *controllers.AdminController {
	return controllers.NewAdminController(adminService)
}
