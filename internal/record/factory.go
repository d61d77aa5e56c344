package record

import (
	"fmt"
	"path/filepath"

	"github.com/kingrea/riseshine/internal/clock"
	"github.com/kingrea/riseshine/internal/config"
	"github.com/kingrea/riseshine/internal/logbook"
)

// Open builds the record store selected by the configuration.
func Open(cfg *config.Config, clk clock.Clock, book *logbook.Logbook) (Store, error) {
	switch cfg.File.Storage.Backend {
	case config.BackendSQLite:
		return OpenSQLite(filepath.Join(cfg.DataDir(), "riseshine.db"), clk, book)
	case config.BackendFile:
		return OpenFile(cfg.DataDir(), clk, book)
	default:
		return nil, fmt.Errorf("record: unknown storage backend %q", cfg.File.Storage.Backend)
	}
}
