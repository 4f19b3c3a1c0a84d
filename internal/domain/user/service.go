package user

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	count, err := s.repo.CountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	created := &User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(input.Phone),
	}
	if err := s.repo.Create(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}

// Login verifies name+password. An unknown name and a wrong password are
// distinct failures so the handler can answer 404 vs 400.
func (s *Service) Login(ctx context.Context, name, password string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return nil, fmt.Errorf("%w: name and password are required", ErrInvalidInput)
	}

	found, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return nil, ErrPasswordMismatch
	}

	return found, nil
}

func (s *Service) GetByID(ctx context.Context, userID uint) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*User, error) {
	existing, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		fields["name"] = name
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if !emailRegex.MatchString(email) {
			return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
		}
		if !strings.EqualFold(email, existing.Email) {
			count, err := s.repo.CountByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, ErrEmailTaken
			}
		}
		fields["email"] = email
	}
	if input.Phone != nil {
		fields["phone"] = strings.TrimSpace(*input.Phone)
	}

	if len(fields) == 0 {
		return existing, nil
	}

	if err := s.repo.Update(ctx, userID, fields); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, userID)
}

func (s *Service) UpdatePicture(ctx context.Context, userID uint, path string) (*User, error) {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, userID, map[string]interface{}{"picture_path": path}); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, userID)
}
