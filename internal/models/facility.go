package models

type FacilityType string

const (
	FacilityRoom       FacilityType = "salon"
	FacilityAuditorium FacilityType = "auditorio"
	FacilityLaboratory FacilityType = "laboratorio"
	FacilityField      FacilityType = "cancha"
)

func (t FacilityType) Valid() bool {
	switch t {
	case FacilityRoom, FacilityAuditorium, FacilityLaboratory, FacilityField:
		return true
	}
	return false
}

type Facility struct {
	ID       string       `bson:"_id" json:"_id" validate:"required"`
	Location string       `bson:"ubicacion" json:"ubicacion" validate:"required"`
	Type     FacilityType `bson:"tipo" json:"tipo" validate:"enum"`
	Capacity int          `bson:"capacidad" json:"capacidad" validate:"gt=0"`
}
