package application

import (
	"errors"

	"github.com/linskybing/bodhi-go/internal/domain/user"
	"github.com/linskybing/bodhi-go/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserRequired = errors.New("user name is required")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

// Identify records the authenticated caller, refreshing its groups from the
// token claims.
func (s *UserService) Identify(actor Actor) (*user.User, error) {
	if actor.Name == "" {
		return nil, ErrUserRequired
	}
	return s.Repos.User.EnsureUser(actor.Name, actor.Groups)
}

func (s *UserService) Get(name string) (user.UserDTO, error) {
	u, err := s.Repos.User.GetByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user.UserDTO{}, ErrUserNotFound
	}
	if err != nil {
		return user.UserDTO{}, err
	}
	return user.ToDTO(u), nil
}
