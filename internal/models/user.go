package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Role string

const (
	RoleStudent           Role = "estudiante"
	RoleLecturer          Role = "docente"
	RoleAcademicSecretary Role = "secretariaAcademica"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleLecturer, RoleAcademicSecretary:
		return true
	}
	return false
}

type AffiliationStatus string

const (
	AffiliationActive   AffiliationStatus = "activo"
	AffiliationInactive AffiliationStatus = "inactivo"
)

func (s AffiliationStatus) Valid() bool {
	switch s {
	case AffiliationActive, AffiliationInactive:
		return true
	}
	return false
}

type PasswordStatus string

const (
	PasswordActive   PasswordStatus = "activa"
	PasswordInactive PasswordStatus = "inactiva"
)

func (s PasswordStatus) Valid() bool {
	switch s {
	case PasswordActive, PasswordInactive:
		return true
	}
	return false
}

// Password is one entry of the password history. Hash holds a bcrypt digest
// once the user went through the service layer.
type Password struct {
	Hash      string         `bson:"clave" json:"clave" validate:"required"`
	ChangedAt time.Time      `bson:"fechaCambio" json:"fechaCambio"`
	Status    PasswordStatus `bson:"estado" json:"estado" validate:"enum"`
}

// Affiliation links a user to a role inside a program, unit or faculty.
type Affiliation struct {
	Role      Role              `bson:"rol" json:"rol" validate:"enum"`
	ProgramID *bson.ObjectID    `bson:"programaId,omitempty" json:"programaId,omitempty"`
	UnitID    *bson.ObjectID    `bson:"unidadId,omitempty" json:"unidadId,omitempty"`
	FacultyID *bson.ObjectID    `bson:"facultadId,omitempty" json:"facultadId,omitempty"`
	Date      *time.Time        `bson:"fecha,omitempty" json:"fecha,omitempty"`
	Status    AffiliationStatus `bson:"estado,omitempty" json:"estado,omitempty" validate:"omitempty,enum"`
}

type User struct {
	ID           int           `bson:"_id" json:"_id"`
	Name         string        `bson:"nombre" json:"nombre" validate:"required"`
	Surname      string        `bson:"apellidos" json:"apellidos" validate:"required"`
	Email        string        `bson:"email" json:"email" validate:"required,email"`
	Phones       []string      `bson:"telefonos" json:"telefonos"`
	Passwords    []Password    `bson:"password" json:"password" validate:"dive"`
	Affiliations []Affiliation `bson:"vinculacion" json:"vinculacion" validate:"dive"`
}

func (u User) FullName() string {
	if u.Surname == "" {
		return u.Name
	}
	return u.Name + " " + u.Surname
}

// RoleSet is the set of roles a user currently holds.
type RoleSet map[Role]struct{}

func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

// EffectiveRoles returns the roles of active affiliations only. An
// affiliation without a status does not count.
func (u User) EffectiveRoles() RoleSet {
	set := RoleSet{}
	for _, a := range u.Affiliations {
		switch a.Status {
		case AffiliationActive:
			set[a.Role] = struct{}{}
		case AffiliationInactive, "":
		}
	}
	return set
}
