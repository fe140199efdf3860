package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"academic-events/dto"
	"academic-events/internal/models"
	"academic-events/internal/repository"
)

type UserService struct {
	catalog[models.User, int]
	cost int
	now  func() time.Time
}

func NewUserService(repos repository.Repositories, log zerolog.Logger) *UserService {
	return &UserService{
		catalog: newCatalog(repos.Users, "user", log),
		cost:    bcrypt.DefaultCost,
		now:     time.Now,
	}
}

// passwordDefaults marks new passwords active and dates them now.
func (s *UserService) passwordDefaults(passwords []models.Password) {
	for i := range passwords {
		if passwords[i].ChangedAt.IsZero() {
			passwords[i].ChangedAt = s.now()
		}
		passwords[i].ChangedAt = normalizeDate(passwords[i].ChangedAt)
		if passwords[i].Status == "" {
			passwords[i].Status = models.PasswordActive
		}
	}
}

// hashPasswords replaces every plain-text clave with its bcrypt hash.
func (s *UserService) hashPasswords(passwords []models.Password) ([]models.Password, error) {
	out := make([]models.Password, len(passwords))
	for i, p := range passwords {
		hash, err := bcrypt.GenerateFromPassword([]byte(p.Hash), s.cost)
		if err != nil {
			return nil, fmt.Errorf("%w: password %d: %v", ErrInvalidInput, i, err)
		}
		p.Hash = string(hash)
		out[i] = p
	}
	return out, nil
}

func (s *UserService) Create(ctx context.Context, req dto.UserRequest) (*dto.UserResponse, error) {
	u := req.ToModel()
	if u.Passwords == nil {
		u.Passwords = []models.Password{}
	}
	if u.Affiliations == nil {
		u.Affiliations = []models.Affiliation{}
	}
	s.passwordDefaults(u.Passwords)
	if err := checkInput(u); err != nil {
		return nil, err
	}

	hashed, err := s.hashPasswords(u.Passwords)
	if err != nil {
		return nil, err
	}
	u.Passwords = hashed

	if err := s.insert(ctx, u.ID, u); err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(u)
	return &resp, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return out, nil
}

func (s *UserService) GetUser(ctx context.Context, id int) (*dto.UserResponse, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(*u)
	return &resp, nil
}

// Update re-hashes the password list when one is supplied.
func (s *UserService) Update(ctx context.Context, id int, req dto.UserUpdateRequest) (*dto.UserResponse, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	u, fields := *current, bson.M{}
	err = errors.Join(
		assign(req.Name, "nombre", &u.Name, fields, false),
		assign(req.Surname, "apellidos", &u.Surname, fields, false),
		assign(req.Email, "email", &u.Email, fields, false),
		assign(req.Phones, "telefonos", &u.Phones, fields, true),
		assign(req.Passwords, "password", &u.Passwords, fields, false),
		assign(req.Affiliations, "vinculacion", &u.Affiliations, fields, false),
	)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if req.Passwords.Present() {
			s.passwordDefaults(u.Passwords)
		}
		if err := checkInput(u); err != nil {
			return nil, err
		}
		if req.Passwords.Present() {
			if u.Passwords, err = s.hashPasswords(u.Passwords); err != nil {
				return nil, err
			}
			fields["password"] = u.Passwords
		}
		if err := s.update(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	resp := dto.NewUserResponse(u)
	return &resp, nil
}
