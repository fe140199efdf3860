package dto

import (
	"academic-events/internal/models"
)

type EventRequest struct {
	Name          string                             `json:"nombre"`
	Status        models.EventStatus                 `json:"estado,omitempty"`
	Type          models.EventType                   `json:"tipo"`
	Realization   models.Realization                 `json:"realizacion"`
	Organizers    []models.Organizer                 `json:"organizador"`
	Organizations []models.OrganizationParticipation `json:"organizacion,omitempty"`
	Capacity      int                                `json:"capacidad"`
}

func (r EventRequest) ToModel() models.Event {
	return models.Event{
		Name:          r.Name,
		Status:        r.Status,
		Type:          r.Type,
		Realization:   r.Realization,
		Organizers:    r.Organizers,
		Organizations: r.Organizations,
		Capacity:      r.Capacity,
	}
}

// EventUpdateRequest replaces whole top-level fields. organizacion may be
// null to drop every participating organization.
type EventUpdateRequest struct {
	Name          Optional[string]                             `json:"nombre" swaggertype:"string"`
	Status        Optional[models.EventStatus]                 `json:"estado" swaggertype:"string"`
	Type          Optional[models.EventType]                   `json:"tipo" swaggertype:"string"`
	Realization   Optional[models.Realization]                 `json:"realizacion" swaggertype:"object"`
	Organizers    Optional[[]models.Organizer]                 `json:"organizador" swaggertype:"array,object"`
	Organizations Optional[[]models.OrganizationParticipation] `json:"organizacion" swaggertype:"array,object"`
	Capacity      Optional[int]                                `json:"capacidad" swaggertype:"integer"`
}
