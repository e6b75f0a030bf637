package contact_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"royalnano/internal/api/controllers"
	"royalnano/internal/repositories"
	"royalnano/internal/services"
)

var Module = fx.Provide(
	provideContactRepo, provideContactService, provideContactController,
)

func provideContactRepo(db *gorm.DB) repositories.ContactRepositoryInterface {
	return repositories.NewContactRepository(db)
}

func provideContactService(contactRepo repositories.ContactRepositoryInterface) services.ContactServiceInterface {
	return services.NewContactService(contactRepo)
}

func provideContactController(contactService services.ContactServiceInterface) *controllers.ContactController {
	return controllers.NewContactController(contactService)
}
