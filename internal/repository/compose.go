package repository

import (
	"github.com/linskybing/bodhi-go/internal/domain/compose"
	"gorm.io/gorm"
)

// ComposeRepo matches the domain compose repository contract.
type ComposeRepo interface {
	compose.Repository
	WithTx(tx *gorm.DB) ComposeRepo
}

type DBComposeRepo struct {
	db *gorm.DB
}

func NewComposeRepo(db *gorm.DB) *DBComposeRepo {
	return &DBComposeRepo{
		db: db,
	}
}

func (r *DBComposeRepo) Create(c *compose.Compose) error {
	return r.db.Create(c).Error
}

func (r *DBComposeRepo) Get(releaseID uint, request string) (*compose.Compose, error) {
	var c compose.Compose
	err := r.db.Where("release_id = ? AND request = ?", releaseID, request).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *DBComposeRepo) List() ([]compose.Compose, error) {
	var composes []compose.Compose
	err := r.db.Order("date_created ASC").Find(&composes).Error
	return composes, err
}

func (r *DBComposeRepo) Update(c *compose.Compose) error {
	return r.db.Save(c).Error
}

func (r *DBComposeRepo) Delete(id uint) error {
	return r.db.Delete(&compose.Compose{}, id).Error
}

func (r *DBComposeRepo) WithTx(tx *gorm.DB) ComposeRepo {
	if tx == nil {
		return r
	}
	return &DBComposeRepo{
		db: tx,
	}
}
