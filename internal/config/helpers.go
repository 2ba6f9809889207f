package config

import (
	"strings"

	"github.com/soltixdb/tsread/internal/types"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// DataType returns the configured default data type, falling back to fallback when unset
func (c *ReadConfig) DataType(fallback types.DataType) types.DataType {
	if c.DefaultDataType == "" {
		return fallback
	}
	dt, err := types.ParseDataType(c.DefaultDataType)
	if err != nil {
		return fallback
	}
	return dt
}
