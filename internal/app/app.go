package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/insurancebuddy/internal/catalog"
	"github.com/bobmcallan/insurancebuddy/internal/common"
	"github.com/bobmcallan/insurancebuddy/internal/interfaces"
	"github.com/bobmcallan/insurancebuddy/internal/services/content"
	"github.com/bobmcallan/insurancebuddy/internal/services/plan"
	"github.com/bobmcallan/insurancebuddy/internal/storage"
)

// App holds the storage, the plan catalog and the services built on them.
// It is the composition root shared by every buddy-server command.
type App struct {
	Config         *common.Config
	Logger         *common.Logger
	Storage        interfaces.StorageManager
	Catalog        *catalog.Loader
	ContentService interfaces.ContentService
	PlanService    interfaces.PlanService
	StartupTime    time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// ResolveConfigPath picks the config file: the given path, BUDDY_CONFIG,
// buddy.toml next to the binary, then config/buddy.toml.
func ResolveConfigPath(configPath string) string {
	if configPath == "" {
		configPath = os.Getenv("BUDDY_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(getBinaryDir(), "buddy.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/buddy.toml" // fallback for development
		}
	}
	return configPath
}

// resolvePath anchors a relative path at the binary directory when the file
// exists there, otherwise leaves it relative to the working directory.
func resolvePath(binDir, path string) string {
	if path == "" || filepath.IsAbs(path) || path == ":memory:" {
		return path
	}
	candidate := filepath.Join(binDir, path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return path
}

// LoadConfig resolves and loads the configuration for configPath.
func LoadConfig(configPath string) (*common.Config, error) {
	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	config, err := common.LoadConfig(ResolveConfigPath(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	binDir := getBinaryDir()
	config.Storage.Path = resolvePath(binDir, config.Storage.Path)
	config.Catalog.Path = resolvePath(binDir, config.Catalog.Path)
	config.Logging.FilePath = resolvePath(binDir, config.Logging.FilePath)
	return config, nil
}

// NewApp loads configuration and initializes storage and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return NewAppWithConfig(config, common.NewLoggerFromConfig(config.Logging))
}

// NewAppWithConfig wires the app from an already loaded configuration.
func NewAppWithConfig(config *common.Config, logger *common.Logger) (*App, error) {
	startupStart := time.Now()

	storageManager, err := storage.NewStorageManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	loader := catalog.NewLoader(config.Catalog.Path, logger)
	contentService := content.NewService(storageManager, logger)
	planService := plan.NewService(loader, contentService, config, logger)

	a := &App{
		Config:         config,
		Logger:         logger,
		Storage:        storageManager,
		Catalog:        loader,
		ContentService: contentService,
		PlanService:    planService,
		StartupTime:    startupStart,
	}

	logger.Info().
		Str("storage", storageManager.Backend()).
		Str("catalog", loader.Path()).
		Dur("startup", time.Since(startupStart)).
		Msg("App initialized")

	return a, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close storage")
		}
		a.Storage = nil
	}
}
