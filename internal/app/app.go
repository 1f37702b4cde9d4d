package app

import (
	"os"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vendorahq/vendora/internal/config"
	"github.com/vendorahq/vendora/internal/store"
)

// Application wires the configuration, persistence backend, store, event
// bus and scheduler together for the CLI shell.
type Application struct {
	appConfig *config.AppConfig
	backend   store.Backend
	dataStore *store.Store
	bus       EventBus.Bus
	sched     *cron.Cron
}

// Ensure Application implements all provider interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ StoreProvider     = (*Application)(nil)
	_ BusProvider       = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() *store.Store {
	return a.dataStore
}

func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// OverrideStore replaces the application's store (used in tests).
func (a *Application) OverrideStore(s *store.Store) {
	a.dataStore = s
}

// Init sets up logging, opens the persistence backend and constructs the
// store. It must be called once before any other method.
func (a *Application) Init() error {
	a.initLogger()

	if err := os.MkdirAll(a.appConfig.System.Workdir, 0o755); err != nil {
		return errors.Wrap(err, "create workdir")
	}

	backend, err := a.openBackend()
	if err != nil {
		return err
	}
	a.backend = backend

	a.bus = EventBus.New()
	a.dataStore, err = store.New(backend, store.WithBus(a.bus))
	if err != nil {
		return err
	}
	a.subscribeEventLog()
	a.initJobs()

	zap.S().Debugf("store ready, backend: %s", a.appConfig.Storage.Backend)
	return nil
}

func (a *Application) initLogger() {
	cfg := a.appConfig

	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stderr"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.LogFile(),
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stderr),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

func (a *Application) openBackend() (store.Backend, error) {
	cfg := a.appConfig
	switch cfg.Storage.Backend {
	case config.BackendFile:
		return store.NewFileBackend(cfg.DataPath()), nil
	case config.BackendMemory:
		return store.NewMemoryBackend(), nil
	case config.BackendBolt, "":
		return store.NewBoltBackend(cfg.DataPath())
	default:
		return nil, errors.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// subscribeEventLog mirrors every store mutation into the debug log.
func (a *Application) subscribeEventLog() {
	saved := []string{
		store.TopicLocationSaved,
		store.TopicProductSaved,
		store.TopicDeliverySaved,
		store.TopicOrderSaved,
		store.TopicSaleSaved,
	}
	deleted := []string{
		store.TopicLocationDeleted,
		store.TopicProductDeleted,
		store.TopicDeliveryDeleted,
		store.TopicOrderDeleted,
		store.TopicSaleDeleted,
	}
	for _, topic := range saved {
		topic := topic
		_ = a.bus.Subscribe(topic, func(record interface{}) {
			zap.S().Debugf("%s: %+v", topic, record)
		})
	}
	for _, topic := range deleted {
		topic := topic
		_ = a.bus.Subscribe(topic, func(id string) {
			zap.S().Debugf("%s: id=%s", topic, id)
		})
	}
}

// StartBackgroundJobs starts the cron scheduler. Only long-lived commands
// call this; one-shot CLI invocations skip it.
func (a *Application) StartBackgroundJobs() {
	if a.sched != nil {
		a.sched.Start()
	}
}

// Release stops background jobs and releases application resources.
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			zap.S().Errorf("close backend: %v", err)
		}
	}
	_ = zap.L().Sync()
}
