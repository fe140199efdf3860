package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type EvaluationStatus string

const (
	EvaluationApproved EvaluationStatus = "aprobado"
	EvaluationRejected EvaluationStatus = "rechazado"
)

func (s EvaluationStatus) Valid() bool {
	switch s {
	case EvaluationApproved, EvaluationRejected:
		return true
	}
	return false
}

// Evaluation is the academic secretary's verdict on an event.
type Evaluation struct {
	ID             bson.ObjectID    `bson:"_id,omitempty" json:"_id"`
	Status         EvaluationStatus `bson:"estado" json:"estado" validate:"enum"`
	Date           time.Time        `bson:"fechaEvaluacion" json:"fechaEvaluacion" validate:"required"`
	Justification  string           `bson:"justificacion,omitempty" json:"justificacion,omitempty"`
	ApprovalRecord []byte           `bson:"actaAprovacion,omitempty" json:"actaAprovacion,omitempty"`
	EventID        bson.ObjectID    `bson:"eventoId" json:"eventoId" validate:"required"`
	UserID         int              `bson:"usuarioId" json:"usuarioId"`
}
