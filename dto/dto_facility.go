package dto

import "academic-events/internal/models"

type FacilityUpdateRequest struct {
	Location Optional[string]              `json:"ubicacion" swaggertype:"string"`
	Type     Optional[models.FacilityType] `json:"tipo" swaggertype:"string"`
	Capacity Optional[int]                 `json:"capacidad" swaggertype:"integer"`
}
