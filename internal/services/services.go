package services

import (
	"github.com/rs/zerolog"

	"academic-events/internal/booking"
	"academic-events/internal/repository"
)

// Services is every service the HTTP layer routes to.
type Services struct {
	Events        *EventService
	Evaluations   *EvaluationService
	Users         *UserService
	Facilities    *FacilityService
	Organizations *OrganizationService
	Faculties     *FacultyService
}

func New(repos repository.Repositories, locker booking.Locker, log zerolog.Logger) Services {
	return Services{
		Events:        NewEventService(repos, locker, log),
		Evaluations:   NewEvaluationService(repos, log),
		Users:         NewUserService(repos, log),
		Facilities:    NewFacilityService(repos, log),
		Organizations: NewOrganizationService(repos, log),
		Faculties:     NewFacultyService(repos, log),
	}
}
