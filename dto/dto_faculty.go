package dto

import "academic-events/internal/models"

type FacultyRequest struct {
	Name     string                `json:"nombre"`
	Units    []models.AcademicUnit `json:"unidadAcademica"`
	Programs []models.Program      `json:"programa"`
}

func (r FacultyRequest) ToModel() models.Faculty {
	return models.Faculty{Name: r.Name, Units: r.Units, Programs: r.Programs}
}

type FacultyUpdateRequest struct {
	Name     Optional[string]                `json:"nombre" swaggertype:"string"`
	Units    Optional[[]models.AcademicUnit] `json:"unidadAcademica" swaggertype:"array,object"`
	Programs Optional[[]models.Program]      `json:"programa" swaggertype:"array,object"`
}
