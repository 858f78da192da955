package flatten

import (
	"github.com/kobotools/kobotab/internal/pkg/model"
	"github.com/kobotools/kobotab/internal/pkg/utils"
)

// Config is the tuning surface of the flattener, the assembler and the exporter.
// The zero value is not usable, start from DefaultConfig.
type Config struct {
	// Separator joins nested field names into child table names, eg. "root_members".
	Separator string
	// RootTable is the name of the table with one row per submission.
	RootTable string
	// NullValue fills missing and nil cells.
	NullValue string
	// MaxSheetNameLength limits sanitized sheet names on export, 31 for xlsx.
	MaxSheetNameLength int
	// ExcludedFields are dropped before classification.
	ExcludedFields []string
	// CleanColumnNames reduces column names to the last "/" segment,
	// removing the group prefixes KoboToolbox puts into field names.
	CleanColumnNames bool
}

// DefaultExcludedFields are KoboToolbox bookkeeping fields
// that carry no survey data.
var DefaultExcludedFields = []string{
	"_validation_status",
	"formhub/uuid",
	"meta/instanceID",
	"_xform_id_string",
	"meta/rootUuid",
}

func DefaultConfig() Config {
	return Config{
		Separator:          "_",
		RootTable:          model.RootTableName,
		NullValue:          "",
		MaxSheetNameLength: 31,
		ExcludedFields:     DefaultExcludedFields,
		CleanColumnNames:   true,
	}
}

// Validate reports all configuration problems at once.
func (c Config) Validate() error {
	e := utils.NewError()
	if c.Separator == "" {
		e.AddRaw("separator must not be empty")
	}
	if c.RootTable == "" {
		e.AddRaw("root table name must not be empty")
	}
	if c.MaxSheetNameLength < 1 {
		e.AddRaw("max sheet name length must be positive")
	}
	if err := e.ErrorOrNil(); err != nil {
		return utils.WrapError("invalid configuration", err)
	}
	return nil
}

func (c Config) isExcluded(field string) bool {
	for _, f := range c.ExcludedFields {
		if f == field {
			return true
		}
	}
	return false
}

// columnName optionally strips the "group1/group2/" prefix from a field name.
// Linkage columns (underscore-prefixed) are kept as-is.
func (c Config) columnName(field string) string {
	if !c.CleanColumnNames || len(field) == 0 || field[0] == '_' {
		return field
	}
	for i := len(field) - 1; i >= 0; i-- {
		if field[i] == '/' {
			return field[i+1:]
		}
	}
	return field
}
