package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"

	"github.com/vendorahq/vendora/internal/config"
	"github.com/vendorahq/vendora/internal/store"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides data store access
type StoreProvider interface {
	Store() *store.Store
}

// BusProvider provides the mutation event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Commands should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	StoreProvider
	BusProvider
	SchedulerProvider

	// Application lifecycle methods
	Init() error
	StartBackgroundJobs()
	Release()
	// RunSnapshot writes one backup snapshot immediately and returns its path
	RunSnapshot() (string, error)
}
