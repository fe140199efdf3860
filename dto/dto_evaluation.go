package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"academic-events/internal/models"
)

// EvaluationRequest creates an evaluation. fechaEvaluacion defaults to now.
type EvaluationRequest struct {
	Status         models.EvaluationStatus `json:"estado"`
	Date           models.Timestamp        `json:"fechaEvaluacion" swaggertype:"string"`
	Justification  string                  `json:"justificacion,omitempty"`
	ApprovalRecord []byte                  `json:"actaAprovacion,omitempty"`
	EventID        bson.ObjectID           `json:"eventoId" swaggertype:"string"`
	UserID         int                     `json:"usuarioId"`
}

func (r EvaluationRequest) ToModel() models.Evaluation {
	return models.Evaluation{
		Status:         r.Status,
		Date:           r.Date.Time,
		Justification:  r.Justification,
		ApprovalRecord: r.ApprovalRecord,
		EventID:        r.EventID,
		UserID:         r.UserID,
	}
}

type EvaluationUpdateRequest struct {
	Status         Optional[models.EvaluationStatus] `json:"estado" swaggertype:"string"`
	Date           Optional[models.Timestamp]        `json:"fechaEvaluacion" swaggertype:"string"`
	Justification  Optional[string]                  `json:"justificacion" swaggertype:"string"`
	ApprovalRecord Optional[[]byte]                  `json:"actaAprovacion" swaggertype:"string"`
	EventID        Optional[bson.ObjectID]           `json:"eventoId" swaggertype:"string"`
	UserID         Optional[int]                     `json:"usuarioId" swaggertype:"integer"`
}

// DateValue unwraps fechaEvaluacion for merging into the stored evaluation.
func (r EvaluationUpdateRequest) DateValue() Optional[time.Time] {
	return Optional[time.Time]{Set: r.Date.Set, Null: r.Date.Null, Value: r.Date.Value.Time}
}
