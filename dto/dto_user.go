package dto

import (
	"time"

	"academic-events/internal/models"
)

// UserRequest carries plain-text passwords; they are hashed before storage.
type UserRequest struct {
	ID           int                  `json:"_id"`
	Name         string               `json:"nombre"`
	Surname      string               `json:"apellidos"`
	Email        string               `json:"email"`
	Phones       []string             `json:"telefonos"`
	Passwords    []models.Password    `json:"password"`
	Affiliations []models.Affiliation `json:"vinculacion"`
}

func (r UserRequest) ToModel() models.User {
	return models.User{
		ID:           r.ID,
		Name:         r.Name,
		Surname:      r.Surname,
		Email:        r.Email,
		Phones:       r.Phones,
		Passwords:    r.Passwords,
		Affiliations: r.Affiliations,
	}
}

type UserUpdateRequest struct {
	Name         Optional[string]               `json:"nombre" swaggertype:"string"`
	Surname      Optional[string]               `json:"apellidos" swaggertype:"string"`
	Email        Optional[string]               `json:"email" swaggertype:"string"`
	Phones       Optional[[]string]             `json:"telefonos" swaggertype:"array,string"`
	Passwords    Optional[[]models.Password]    `json:"password" swaggertype:"array,object"`
	Affiliations Optional[[]models.Affiliation] `json:"vinculacion" swaggertype:"array,object"`
}

type PasswordInfo struct {
	ChangedAt time.Time             `json:"fechaCambio"`
	Status    models.PasswordStatus `json:"estado"`
}

// UserResponse is a user without password hashes.
type UserResponse struct {
	ID           int                  `json:"_id"`
	Name         string               `json:"nombre"`
	Surname      string               `json:"apellidos"`
	Email        string               `json:"email"`
	Phones       []string             `json:"telefonos"`
	Passwords    []PasswordInfo       `json:"password"`
	Affiliations []models.Affiliation `json:"vinculacion"`
}

func NewUserResponse(u models.User) UserResponse {
	passwords := make([]PasswordInfo, 0, len(u.Passwords))
	for _, p := range u.Passwords {
		passwords = append(passwords, PasswordInfo{ChangedAt: p.ChangedAt, Status: p.Status})
	}
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Surname:      u.Surname,
		Email:        u.Email,
		Phones:       u.Phones,
		Passwords:    passwords,
		Affiliations: u.Affiliations,
	}
}
