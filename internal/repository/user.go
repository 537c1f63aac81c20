package repository

import (
	"errors"

	"github.com/lib/pq"
	"github.com/linskybing/bodhi-go/internal/domain/user"
	"gorm.io/gorm"
)

// UserRepo matches the domain user repository contract.
type UserRepo interface {
	user.Repository
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetByName(name string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("name = ?", name).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *DBUserRepo) EnsureUser(name string, groups []string) (*user.User, error) {
	u, err := r.GetByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u = &user.User{Name: name, Groups: pq.StringArray(groups)}
		if err := r.db.Create(u).Error; err != nil {
			return nil, err
		}
		return u, nil
	}
	if err != nil {
		return nil, err
	}
	if groups != nil {
		u.Groups = pq.StringArray(groups)
		if err := r.db.Model(u).Update("groups", u.Groups).Error; err != nil {
			return nil, err
		}
	}
	return u, nil
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
