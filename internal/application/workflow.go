package application

import (
	"context"

	"github.com/linskybing/bodhi-go/internal/application/lifecycle"
	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/internal/notify"
	"github.com/linskybing/bodhi-go/internal/repository"
)

// repoStore backs the lifecycle with the repositories of one transaction.
type repoStore struct {
	repos *repository.Repos
}

func (s repoStore) KnownTags() (map[string]bool, error) {
	return s.repos.Release.KnownTags()
}

func (s repoStore) ObsoletionCandidates(u *update.Update) ([]update.Update, error) {
	return s.repos.Update.FindObsoletionCandidates(u.ReleaseID, u.PackageNames(), u.ID)
}

func (s repoStore) SaveUpdate(u *update.Update) error {
	return s.repos.Update.Save(u)
}

// workflow runs lifecycle operations inside a transaction. Events raised
// during the transaction are published only once it commits.
type workflow struct {
	repos   *repository.Repos
	machine *lifecycle.Machine
	pub     notify.Publisher
}

func (w workflow) run(ctx context.Context, fn func(tx *repository.Repos, m *lifecycle.Machine, events notify.Publisher) error) error {
	buf := notify.NewBuffer()
	err := w.repos.ExecTx(func(tx *repository.Repos) error {
		return fn(tx, w.machine.With(repoStore{repos: tx}, buf), buf)
	})
	if err != nil {
		return err
	}
	buf.Flush(ctx, w.pub)
	return nil
}
