package bootstrap

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	curriculuminadapter "sukhan/internal/modules/curriculum/adapter/in"
	curriculumoutadapter "sukhan/internal/modules/curriculum/adapter/out"
	curriculumservice "sukhan/internal/modules/curriculum/service"
	curriculumusecase "sukhan/internal/modules/curriculum/usecase"
	progressinadapter "sukhan/internal/modules/progress/adapter/in"
	progressoutadapter "sukhan/internal/modules/progress/adapter/out"
	progressservice "sukhan/internal/modules/progress/service"
	progressusecase "sukhan/internal/modules/progress/usecase"
	reviewinadapter "sukhan/internal/modules/review/adapter/in"
	reviewservice "sukhan/internal/modules/review/service"
	reviewusecase "sukhan/internal/modules/review/usecase"
	sessioninadapter "sukhan/internal/modules/session/adapter/in"
	sessionoutadapter "sukhan/internal/modules/session/adapter/out"
	sessionservice "sukhan/internal/modules/session/service"
	sessionusecase "sukhan/internal/modules/session/usecase"
	settingsinadapter "sukhan/internal/modules/settings/adapter/in"
	settingsoutadapter "sukhan/internal/modules/settings/adapter/out"
	settingsservice "sukhan/internal/modules/settings/service"
	settingsusecase "sukhan/internal/modules/settings/usecase"
	srsinadapter "sukhan/internal/modules/srs/adapter/in"
	srsoutadapter "sukhan/internal/modules/srs/adapter/out"
	srsservice "sukhan/internal/modules/srs/service"
	srsusecase "sukhan/internal/modules/srs/usecase"
	"sukhan/internal/platform/clock"
	"sukhan/internal/platform/config"
	"sukhan/internal/platform/id"
	"sukhan/internal/platform/kvstore"
	"sukhan/internal/platform/logging"
	"sukhan/internal/platform/random"
)

type App struct {
	CurriculumCLI curriculuminadapter.CLIHandler
	ProgressCLI   progressinadapter.CLIHandler
	SRSCLI        srsinadapter.CLIHandler
	ReviewCLI     reviewinadapter.CLIHandler
	SessionCLI    sessioninadapter.CLIHandler
	SettingsCLI   settingsinadapter.CLIHandler
	Logger        *logrus.Logger

	closers []io.Closer
}

// New wires every module against the storage backend named in cfg. logOut
// receives the structured log stream.
func New(cfg config.Config, logOut io.Writer) (*App, error) {
	logger, err := logging.New(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}
	app := &App{Logger: logger}

	kv, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	if closer, ok := kv.(io.Closer); ok {
		app.closers = append(app.closers, closer)
	}

	clk := clock.SystemClock{}
	ids := id.UUID{}

	contentStore, fromDisk := curriculumoutadapter.NewDirContentStore(cfg.Content.Dir)
	if !fromDisk {
		logger.WithField("content_dir", cfg.Content.Dir).Info("content directory not found, using starter curriculum")
	}
	curriculumUC := curriculumusecase.NewInteractor(curriculumservice.NewCurriculumService(contentStore, logger.WithField("module", "curriculum")))

	progressUC := progressusecase.NewInteractor(
		progressservice.NewProgressService(progressoutadapter.NewKVLedgerStore(kv), logger.WithField("module", "progress")),
		curriculumUC,
	)
	srsLog := logger.WithField("module", "srs")
	srsUC := srsusecase.NewInteractor(srsservice.NewSchedulerService(clk, srsoutadapter.NewKVWordStateStore(kv, srsLog), srsLog))
	reviewUC := reviewusecase.NewInteractor(
		reviewservice.NewSelectorService(random.Seeded(cfg.Random.Seed), cfg.Quiz.PassRatio, logger.WithField("module", "review")),
		curriculumUC,
		srsUC,
	)
	settingsUC := settingsusecase.NewInteractor(settingsservice.NewSettingsService(settingsoutadapter.NewKVSettingsStore(kv), logger.WithField("module", "settings")))

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids, sessionoutadapter.NewJournalSessionStore(cfg.DataPath), logger.WithField("module", "session")),
		sessionusecase.Deps{
			Curriculum: curriculumUC,
			Progress:   progressUC,
			Review:     reviewUC,
			SRS:        srsUC,
			Settings:   settingsUC,
		},
		sessionoutadapter.NewFileActiveSessionStore(cfg.StateDir),
	)

	app.CurriculumCLI = curriculuminadapter.NewCLIHandler(curriculumUC)
	app.ProgressCLI = progressinadapter.NewCLIHandler(progressUC)
	app.SRSCLI = srsinadapter.NewCLIHandler(srsUC)
	app.ReviewCLI = reviewinadapter.NewCLIHandler(reviewUC)
	app.SessionCLI = sessioninadapter.NewCLIHandler(sessionUC)
	app.SettingsCLI = settingsinadapter.NewCLIHandler(settingsUC)
	return app, nil
}

func openStore(cfg config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		store, err := kvstore.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	case config.DriverMemory:
		return kvstore.NewMemoryStore(), nil
	default:
		return kvstore.NewFileStore(filepath.Join(cfg.StateDir, "store")), nil
	}
}

func (a *App) Close() error {
	var first error
	for _, closer := range a.closers {
		if err := closer.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
