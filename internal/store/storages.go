package store

import (
	"fmt"

	"github.com/shpixel/gallery/internal/logger"
)

// Storages groups the state containers and repositories the service layer
// works with: the in-memory catalog (source of truth for the running
// session), the view preferences, and the sqlite cache used for restart
// persistence.
type Storages struct {
	Catalog *Catalog
	Prefs   *Prefs
	Local   LocalStore
}

// NewStorages initialises the storage layer: opens the local sqlite cache at
// dbPath (running migrations) and creates an empty catalog with default
// preferences. The catalog is primed from the cache by the service layer, not
// here, so a corrupt cache row can be handled gracefully.
func NewStorages(dbPath string, log *logger.Logger) (*Storages, error) {
	log.Info().Str("db_path", dbPath).Msg("creating storages...")

	local, err := NewLocalStore(dbPath, log)
	if err != nil {
		return nil, fmt.Errorf("local store: %w", err)
	}

	return &Storages{
		Catalog: NewCatalog(),
		Prefs:   NewPrefs(),
		Local:   local,
	}, nil
}
