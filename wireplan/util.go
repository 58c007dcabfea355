package wireplan

import (
	"fmt"
	"path/filepath"
	"strings"
)

// useYAMLForPath picks the serialization for a file from its extension.
func useYAMLForPath(filename string) (bool, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return true, nil
	case ".json":
		return false, nil
	default:
		return false, fmt.Errorf(
			"%w: can not tell format of %q, expected a .yaml, .yml or .json extension",
			ErrConfig, filename,
		)
	}
}
