package repository

import (
	"github.com/linskybing/bodhi-go/internal/domain/release"
	"gorm.io/gorm"
)

// ReleaseRepo matches the domain release repository contract.
type ReleaseRepo interface {
	release.Repository
	WithTx(tx *gorm.DB) ReleaseRepo
}

type DBReleaseRepo struct {
	db *gorm.DB
}

func NewReleaseRepo(db *gorm.DB) *DBReleaseRepo {
	return &DBReleaseRepo{
		db: db,
	}
}

func (r *DBReleaseRepo) Create(rel *release.Release) error {
	return r.db.Create(rel).Error
}

func (r *DBReleaseRepo) GetByID(id uint) (*release.Release, error) {
	var rel release.Release
	if err := r.db.First(&rel, id).Error; err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *DBReleaseRepo) GetByName(name string) (*release.Release, error) {
	var rel release.Release
	if err := r.db.Where("name = ?", name).First(&rel).Error; err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *DBReleaseRepo) List() ([]release.Release, error) {
	var releases []release.Release
	err := r.db.Order("name DESC").Find(&releases).Error
	return releases, err
}

func (r *DBReleaseRepo) Update(rel *release.Release) error {
	return r.db.Save(rel).Error
}

func (r *DBReleaseRepo) KnownTags() (map[string]bool, error) {
	releases, err := r.List()
	if err != nil {
		return nil, err
	}
	tags := make(map[string]bool)
	for i := range releases {
		for _, t := range releases[i].Tags() {
			tags[t] = true
		}
	}
	return tags, nil
}

func (r *DBReleaseRepo) WithTx(tx *gorm.DB) ReleaseRepo {
	if tx == nil {
		return r
	}
	return &DBReleaseRepo{
		db: tx,
	}
}
