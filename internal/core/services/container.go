package services

import (
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/platform/config"
)

// NewServiceContainer wires all application services over the repository
// provider and returns them as a single container for the handlers.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	userService := NewUserService(repos.UserRepo)

	return &portssvc.ServiceContainer{
		User:               userService,
		Transaction:        NewTransactionService(repos.TransactionRepo),
		Reporting:          NewReportingService(repos.TransactionRepo, repos.UserRepo),
		TokenService:       NewTokenService(cfg, userService),
		GoogleOAuthHandler: NewGoogleOAuthHandlerService(cfg),
	}
}
