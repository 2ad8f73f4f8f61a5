package config

import (
	"fmt"
	"strings"
)

// Store driver names.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// StoreConfig describes the backing product collection. Table is the name of
// the collection holding product records.
type StoreConfig struct {
	Driver string `koanf:"driver"`
	Table  string `koanf:"table"`
}

// String returns a string representation of the store configuration.
func (c *StoreConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Store ---\n")
	b.WriteString(fmt.Sprintf("  driver: %s\n", c.Driver))
	b.WriteString(fmt.Sprintf("  table: %s\n", c.Table))
	return b.String()
}

func (c *StoreConfig) Validate() error {
	switch c.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown store driver: %q", c.Driver)
	}
	if c.Table == "" {
		return fmt.Errorf("store table is not configured")
	}
	return nil
}
