package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Update   UpdateRepo
	Release  ReleaseRepo
	User     UserRepo
	Compose  ComposeRepo
	Override OverrideRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Update:   NewUpdateRepo(db),
		Release:  NewReleaseRepo(db),
		User:     NewUserRepo(db),
		Compose:  NewComposeRepo(db),
		Override: NewOverrideRepo(db),
		db:       db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Update:   r.Update.WithTx(tx),
		Release:  r.Release.WithTx(tx),
		User:     r.User.WithTx(tx),
		Compose:  r.Compose.WithTx(tx),
		Override: r.Override.WithTx(tx),
		db:       tx,
	}
}

// ExecTx runs fn against repositories bound to one transaction. Repos built
// without a database (mocks in tests) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
