package services

import (
	"context"
	"errors"
	"fmt"

	"findly-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type NewUserInput struct {
	Name     string
	Email    string
	Password string
}

type UserInput struct {
	Name     string
	Email    string
	Password string
	Points   int64
	Rewards  int64
}

type UserService struct {
	DB       *gorm.DB
	table    table[models.User]
	hashCost int
}

// NewUserService hashes passwords at the given bcrypt cost; zero means bcrypt.DefaultCost.
func NewUserService(db *gorm.DB, hashCost int) *UserService {
	if hashCost == 0 {
		hashCost = bcrypt.DefaultCost
	}
	return &UserService{DB: db, table: newTable[models.User](db, "user", "user_id"), hashCost: hashCost}
}

func (s *UserService) ListAll(ctx context.Context) ([]models.User, error) {
	return s.table.list(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.table.get(ctx, id)
}

// Create starts every account at zero points and zero rewards.
func (s *UserService) Create(ctx context.Context, in NewUserInput) (*models.User, error) {
	hash, err := s.hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
	}
	if err := s.table.insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int64, in UserInput) (bool, error) {
	hash, err := s.hash(in.Password)
	if err != nil {
		return false, err
	}
	return s.table.update(ctx, id, map[string]any{
		"username":      in.Name,
		"user_email":    in.Email,
		"user_password": hash,
		"user_points":   in.Points,
		"user_rewards":  in.Rewards,
	})
}

func (s *UserService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.table.remove(ctx, id)
}

// CheckLogin reports whether exactly one user with this name has a matching
// password. Duplicate names that both match are rejected.
func (s *UserService) CheckLogin(ctx context.Context, name, password string) (bool, error) {
	var users []models.User
	if err := s.DB.WithContext(ctx).Where("username = ?", name).Find(&users).Error; err != nil {
		return false, err
	}

	matches := 0
	for _, u := range users {
		err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
		switch {
		case err == nil:
			matches++
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		default:
			return false, fmt.Errorf("comparing password for user %d: %w", u.ID, err)
		}
	}
	return matches == 1, nil
}

func (s *UserService) hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(b), nil
}
