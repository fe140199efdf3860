package dto

import "academic-events/internal/models"

type OrganizationRequest struct {
	Name                string         `json:"nombre"`
	LegalRepresentative string         `json:"representanteLegal"`
	Location            models.Address `json:"ubicacion"`
	EconomicSector      string         `json:"sectorEconomico"`
	MainActivity        string         `json:"actividadPrincipal"`
	Phones              []string       `json:"telefonos"`
}

func (r OrganizationRequest) ToModel() models.Organization {
	return models.Organization{
		Name:                r.Name,
		LegalRepresentative: r.LegalRepresentative,
		Location:            r.Location,
		EconomicSector:      r.EconomicSector,
		MainActivity:        r.MainActivity,
		Phones:              r.Phones,
	}
}

type OrganizationUpdateRequest struct {
	Name                Optional[string]         `json:"nombre" swaggertype:"string"`
	LegalRepresentative Optional[string]         `json:"representanteLegal" swaggertype:"string"`
	Location            Optional[models.Address] `json:"ubicacion" swaggertype:"object"`
	EconomicSector      Optional[string]         `json:"sectorEconomico" swaggertype:"string"`
	MainActivity        Optional[string]         `json:"actividadPrincipal" swaggertype:"string"`
	Phones              Optional[[]string]       `json:"telefonos" swaggertype:"array,string"`
}
