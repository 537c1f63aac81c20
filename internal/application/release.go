package application

import (
	"github.com/linskybing/bodhi-go/internal/domain/release"
	"github.com/linskybing/bodhi-go/internal/repository"
)

type ReleaseService struct {
	Repos *repository.Repos
}

func NewReleaseService(repos *repository.Repos) *ReleaseService {
	return &ReleaseService{Repos: repos}
}

func (s *ReleaseService) List() ([]release.Release, error) {
	return s.Repos.Release.List()
}

func (s *ReleaseService) Get(name string) (*release.Release, error) {
	return getRelease(s.Repos, name)
}
