package models

import "go.mongodb.org/mongo-driver/v2/bson"

type AcademicUnit struct {
	ID   bson.ObjectID `bson:"unidadId" json:"unidadId"`
	Name string        `bson:"nombre" json:"nombre" validate:"required"`
}

type Program struct {
	ID   bson.ObjectID `bson:"programaId" json:"programaId"`
	Name string        `bson:"nombre" json:"nombre" validate:"required"`
}

type Faculty struct {
	ID       bson.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Name     string         `bson:"nombre" json:"nombre" validate:"required"`
	Units    []AcademicUnit `bson:"unidadAcademica" json:"unidadAcademica" validate:"dive"`
	Programs []Program      `bson:"programa" json:"programa" validate:"dive"`
}

// AssignMissingIDs gives every unit and program without an id a fresh one.
func (f *Faculty) AssignMissingIDs() {
	for i := range f.Units {
		if f.Units[i].ID.IsZero() {
			f.Units[i].ID = bson.NewObjectID()
		}
	}
	for i := range f.Programs {
		if f.Programs[i].ID.IsZero() {
			f.Programs[i].ID = bson.NewObjectID()
		}
	}
}
