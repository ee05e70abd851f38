// Package format dispatches config decoding by file extension.
package format

import (
	"fmt"

	"github.com/inktag/inktag/pkg/errors"
)

// Format handles unmarshaling for a specific config file format
type Format struct {
	Unmarshal func([]byte, any) error
}

var formatByExtension = map[string]Format{
	"json": {
		Unmarshal: jsonUnmarshal,
	},
	"toml": {
		Unmarshal: tomlUnmarshal,
	},
	"yaml": {
		Unmarshal: yamlUnmarshal,
	},
	"yml": {
		Unmarshal: yamlUnmarshal,
	},
	"properties": {
		Unmarshal: propertiesUnmarshal,
	},
}

// Get retrieves a format by name from the registry
func Get(name string) (*Format, error) {
	ft, found := formatByExtension[name]
	if !found {
		return nil, fmt.Errorf("%s: %w", name, errors.ErrUnknownFormat)
	}

	return &ft, nil
}

// Extensions returns all supported format extensions
func Extensions() []string {
	exts := make([]string, 0, len(formatByExtension))
	for ext := range formatByExtension {
		exts = append(exts, ext)
	}
	return exts
}
