package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type EventStatus string

// EventApproved keeps the spelling already stored in the evento collection.
const (
	EventRegistered EventStatus = "registrado"
	EventInReview   EventStatus = "enRevision"
	EventApproved   EventStatus = "aprovado"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventRegistered, EventInReview, EventApproved:
		return true
	}
	return false
}

type EventType string

const (
	EventRecreational EventType = "ludico"
	EventAcademic     EventType = "academico"
)

func (t EventType) Valid() bool {
	switch t {
	case EventRecreational, EventAcademic:
		return true
	}
	return false
}

type ApprovalType string

const (
	ApprovalProgramDirector  ApprovalType = "directorPrograma"
	ApprovalTeachingDirector ApprovalType = "directorDocencia"
)

func (t ApprovalType) Valid() bool {
	switch t {
	case ApprovalProgramDirector, ApprovalTeachingDirector:
		return true
	}
	return false
}

type OrganizerRole string

const (
	OrganizerPrimary   OrganizerRole = "principal"
	OrganizerSecondary OrganizerRole = "secundario"
)

func (r OrganizerRole) Valid() bool {
	switch r {
	case OrganizerPrimary, OrganizerSecondary:
		return true
	}
	return false
}

type ParticipationType string

const (
	ParticipationLegalRepresentative ParticipationType = "representanteLegal"
	ParticipationOther               ParticipationType = "otro"
)

func (t ParticipationType) Valid() bool {
	switch t {
	case ParticipationLegalRepresentative, ParticipationOther:
		return true
	}
	return false
}

// FacilityBooking is a facility reserved by an event, with the capacity
// declared for it at booking time.
type FacilityBooking struct {
	FacilityID       string `bson:"instalacionId" json:"instalacionId" validate:"required"`
	FacilityCapacity int    `bson:"capacidadInstalacion" json:"capacidadInstalacion" validate:"gte=0"`
}

// Realization binds an event to its facilities, date and wall-clock window.
type Realization struct {
	Facilities []FacilityBooking `bson:"instalaciones" json:"instalaciones" validate:"required,dive"`
	Date       time.Time         `bson:"fecha" json:"fecha" validate:"required"`
	StartTime  string            `bson:"horaInicio" json:"horaInicio"`
	EndTime    string            `bson:"horaFin" json:"horaFin"`
}

type Organizer struct {
	UserID       int           `bson:"usuarioId" json:"usuarioId"`
	ApprovalPDF  []byte        `bson:"avalPDF,omitempty" json:"avalPDF,omitempty"`
	ApprovalType ApprovalType  `bson:"tipoAval" json:"tipoAval" validate:"enum"`
	Role         OrganizerRole `bson:"tipo" json:"tipo" validate:"enum"`
}

type OrganizationParticipation struct {
	OrganizationID  bson.ObjectID     `bson:"organizacionId" json:"organizacionId" validate:"required"`
	Participation   ParticipationType `bson:"participante" json:"participante" validate:"enum"`
	ParticipantName string            `bson:"nombreParticipante" json:"nombreParticipante" validate:"required"`
	Certificate     []byte            `bson:"certificadoParticipacion,omitempty" json:"certificadoParticipacion,omitempty"`
}

type Event struct {
	ID            bson.ObjectID               `bson:"_id,omitempty" json:"_id"`
	Name          string                      `bson:"nombre" json:"nombre" validate:"required"`
	Status        EventStatus                 `bson:"estado" json:"estado" validate:"enum"`
	Type          EventType                   `bson:"tipo" json:"tipo" validate:"enum"`
	Realization   Realization                 `bson:"realizacion" json:"realizacion"`
	Organizers    []Organizer                 `bson:"organizador" json:"organizador" validate:"required,dive"`
	Organizations []OrganizationParticipation `bson:"organizacion,omitempty" json:"organizacion,omitempty" validate:"omitempty,dive"`
	Capacity      int                         `bson:"capacidad" json:"capacidad" validate:"gte=0"`
}
