package repository

import (
	"time"

	"github.com/linskybing/bodhi-go/internal/domain/override"
	"gorm.io/gorm"
)

// OverrideRepo matches the domain override repository contract.
type OverrideRepo interface {
	override.Repository
	WithTx(tx *gorm.DB) OverrideRepo
}

type DBOverrideRepo struct {
	db *gorm.DB
}

func NewOverrideRepo(db *gorm.DB) *DBOverrideRepo {
	return &DBOverrideRepo{
		db: db,
	}
}

func (r *DBOverrideRepo) Create(o *override.BuildrootOverride) error {
	return r.db.Create(o).Error
}

func (r *DBOverrideRepo) GetByNVR(nvr string) (*override.BuildrootOverride, error) {
	var o override.BuildrootOverride
	if err := r.db.Where("build_nvr = ?", nvr).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *DBOverrideRepo) FindExpiring(now time.Time) ([]override.BuildrootOverride, error) {
	var overrides []override.BuildrootOverride
	err := r.db.Where("expired_date IS NULL AND expiration_date < ?", now).
		Order("expiration_date ASC").
		Find(&overrides).Error
	return overrides, err
}

func (r *DBOverrideRepo) Update(o *override.BuildrootOverride) error {
	return r.db.Save(o).Error
}

func (r *DBOverrideRepo) WithTx(tx *gorm.DB) OverrideRepo {
	if tx == nil {
		return r
	}
	return &DBOverrideRepo{
		db: tx,
	}
}
