package analysis

import (
	"log/slog"

	"github.com/echomedia/pricer/internal/catalog"
	"github.com/echomedia/pricer/internal/patterns"
	"github.com/echomedia/pricer/internal/prompts"
)

// Runtime bundles the dependencies that pipeline nodes require.
// It is constructed by higher-level composition code from Infrastructure and
// Domain systems.
type Runtime struct {
	Inferer  Inferer
	Catalog  catalog.System
	Patterns patterns.System
	Prompts  prompts.System
	Logger   *slog.Logger
}
