package models

import "go.mongodb.org/mongo-driver/v2/bson"

type Address struct {
	Street string `bson:"direccion" json:"direccion" validate:"required"`
	City   string `bson:"ciudad" json:"ciudad" validate:"required"`
}

// Organization is an external party that can take part in events.
type Organization struct {
	ID                  bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name                string        `bson:"nombre" json:"nombre" validate:"required"`
	LegalRepresentative string        `bson:"representanteLegal" json:"representanteLegal" validate:"required"`
	Location            Address       `bson:"ubicacion" json:"ubicacion"`
	EconomicSector      string        `bson:"sectorEconomico" json:"sectorEconomico" validate:"required"`
	MainActivity        string        `bson:"actividadPrincipal" json:"actividadPrincipal" validate:"required"`
	Phones              []string      `bson:"telefonos" json:"telefonos"`
}
