package platform

import (
	"context"

	"github.com/aretw0/encyclopedia/pkg/adapters/fs"
	"github.com/aretw0/encyclopedia/pkg/core"
)

// New initializes the storage at path and wraps it in a core.Service.
func New(path string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo, err := initRepository(path, o)
	if err != nil {
		return nil, err
	}

	var svcOpts []core.ServiceOption
	if o.rand != nil {
		svcOpts = append(svcOpts, core.WithRand(o.rand))
	}
	return core.NewService(repo, svcOpts...), nil
}

// Init initializes and returns the repository without the service layer.
func Init(path string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initRepository(path, o)
}

func initRepository(path string, o *options) (core.Repository, error) {
	if o.repository != nil {
		return o.repository, nil
	}

	repo := fs.NewRepository(fs.Config{
		Path:       path,
		EntriesDir: o.entriesDir,
		MustExist:  o.mustExist || !o.autoInit,
		ReadOnly:   o.readOnly,
		Logger:     o.logger,
	})
	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	if o.logger != nil {
		o.logger.Debug("entry store ready", "dir", repo.Dir(), "read_only", o.readOnly)
	}
	return repo, nil
}
