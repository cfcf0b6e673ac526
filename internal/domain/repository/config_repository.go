package repository

import (
	"github.com/diillson/sales-dashboard-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	// LoadEnvFile exports the variables of a dotenv file into the process
	// environment without overriding variables that are already set. A
	// missing file is not an error.
	LoadEnvFile(filePath string) error
}
