package repository

import (
	"errors"
	"fmt"

	"github.com/linskybing/bodhi-go/internal/domain/update"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpdateRepo matches the domain update repository contract.
type UpdateRepo interface {
	update.Repository
	WithTx(tx *gorm.DB) UpdateRepo
}

type DBUpdateRepo struct {
	db *gorm.DB
}

func NewUpdateRepo(db *gorm.DB) *DBUpdateRepo {
	return &DBUpdateRepo{
		db: db,
	}
}

// preload loads everything the lifecycle reads from an update.
func preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Release").
		Preload("Builds", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Preload("Comments", func(tx *gorm.DB) *gorm.DB { return tx.Order("timestamp ASC, id ASC") }).
		Preload("Comments.User").
		Preload("Comments.BugFeedback").
		Preload("Comments.TestCaseFeedback").
		Preload("Bugs")
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", update.ErrUpdateNotFound, err)
	}
	return err
}

func (r *DBUpdateRepo) Create(u *update.Update) error {
	return r.db.Omit("Release").Create(u).Error
}

// Save writes u back. Concurrent writers are serialized by the row lock
// taken in GetByAliasForUpdate, so callers load through it inside ExecTx.
func (r *DBUpdateRepo) Save(u *update.Update) error {
	return r.db.Omit("Release").Save(u).Error
}

func (r *DBUpdateRepo) GetByAlias(alias string) (*update.Update, error) {
	var u update.Update
	if err := preload(r.db).Where("alias = ?", alias).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *DBUpdateRepo) GetByAliasForUpdate(alias string) (*update.Update, error) {
	var u update.Update
	err := preload(r.db).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "updates"}}).
		Where("alias = ?", alias).
		First(&u).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *DBUpdateRepo) GetByID(id uint) (*update.Update, error) {
	var u update.Update
	if err := preload(r.db).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *DBUpdateRepo) FindByStatusAndRequest(status update.UpdateStatus, request update.UpdateRequest) ([]update.Update, error) {
	var updates []update.Update
	q := preload(r.db).Where("status = ?", status)
	if request == update.RequestNone {
		q = q.Where("request IS NULL")
	} else {
		q = q.Where("request = ?", request)
	}
	err := q.Order("id ASC").Find(&updates).Error
	return updates, err
}

func (r *DBUpdateRepo) FindByRequest(request update.UpdateRequest) ([]update.Update, error) {
	var updates []update.Update
	err := preload(r.db).Where("request = ?", request).Order("id ASC").Find(&updates).Error
	return updates, err
}

func (r *DBUpdateRepo) FindByReleaseAndRequest(releaseID uint, request update.UpdateRequest) ([]update.Update, error) {
	var updates []update.Update
	err := preload(r.db).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "updates"}}).
		Where("release_id = ? AND request = ?", releaseID, request).
		Order("id ASC").
		Find(&updates).Error
	return updates, err
}

func (r *DBUpdateRepo) FindByComposeID(composeID uint) ([]update.Update, error) {
	var updates []update.Update
	err := preload(r.db).Where("compose_id = ?", composeID).Order("id ASC").Find(&updates).Error
	return updates, err
}

func (r *DBUpdateRepo) FindObsoletionCandidates(releaseID uint, packages []string, excludeID uint) ([]update.Update, error) {
	var updates []update.Update
	sub := r.db.Model(&update.Build{}).Select("update_id").Where("package IN ?", packages)
	err := preload(r.db).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "updates"}}).
		Where("release_id = ? AND id <> ? AND status IN ?", releaseID, excludeID,
			[]update.UpdateStatus{update.StatusPending, update.StatusTesting}).
		Where("id IN (?)", sub).
		Order("id ASC").
		Find(&updates).Error
	return updates, err
}

func (r *DBUpdateRepo) GetBuildByNVR(nvr string) (*update.Build, error) {
	var b update.Build
	if err := r.db.Where("nvr = ?", nvr).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *DBUpdateRepo) DetachBuild(b *update.Build) error {
	b.UpdateID = nil
	return r.db.Model(b).Update("update_id", nil).Error
}

func (r *DBUpdateRepo) DeleteBuild(b *update.Build) error {
	return r.db.Delete(&update.Build{}, b.ID).Error
}

func (r *DBUpdateRepo) GetOrCreateBugs(ids []int) ([]update.Bug, error) {
	bugs := make([]update.Bug, 0, len(ids))
	for _, id := range ids {
		bug := update.Bug{BugID: id}
		if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&bug).Error; err != nil {
			return nil, err
		}
		if err := r.db.First(&bug, "bug_id = ?", id).Error; err != nil {
			return nil, err
		}
		bugs = append(bugs, bug)
	}
	return bugs, nil
}

func (r *DBUpdateRepo) ReplaceBugs(u *update.Update, bugs []update.Bug) error {
	if err := r.db.Model(u).Association("Bugs").Replace(bugs); err != nil {
		return err
	}
	u.Bugs = bugs
	return nil
}

func (r *DBUpdateRepo) WithTx(tx *gorm.DB) UpdateRepo {
	if tx == nil {
		return r
	}
	return &DBUpdateRepo{
		db: tx,
	}
}
