package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/pvchecker/pv-checker/internal/config"
)

const FlagNameFilter = "filter"

// RegisterFilterFlag registers the repeatable --filter key=value flag, storing values in filters.
func RegisterFilterFlag(fs *pflag.FlagSet, filters *map[string]string) {
	keys := []string{
		config.FilterKeyName,
		config.FilterKeyURL,
		config.FilterKeyPackageType,
		config.FilterKeyVersionType,
	}

	fs.StringToStringVar(
		filters,
		FlagNameFilter,
		nil,
		fmt.Sprintf("Only include packages matching key=value (keys: %s, can be repeated)", strings.Join(keys, ", ")),
	)
}
