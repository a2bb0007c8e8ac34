package consumer

import (
	"errors"

	"github.com/Aradhyakapil/food-safe/internal/business"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrConsumerNotFound   = errors.New("consumer not found")
	ErrInvalidCredentials = errors.New("invalid name or password")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// REGISTER
func (s *Service) Register(name, phoneNumber, password string) (*Consumer, error) {
	if name == "" || phoneNumber == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	exists, err := s.repo.ExistsByName(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("name already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	c := &Consumer{
		Name:        name,
		PhoneNumber: business.NormalizePhone(phoneNumber),
		Password:    string(hashedPassword),
	}

	if err := s.repo.Save(c); err != nil {
		return nil, err
	}

	return c, nil
}

// LOGIN
func (s *Service) Login(name, password string) (*Consumer, error) {
	c, err := s.repo.FindByName(name)
	if err != nil {
		return nil, ErrConsumerNotFound
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(c.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return c, nil
}
