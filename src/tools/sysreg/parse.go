package sysreg

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ParseDevice parses a register table from YAML bytes.
func ParseDevice(data []byte) (*DeviceDef, error) {
	var def DeviceDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(err, "parsing register table")
	}
	if def.Package == "" {
		return nil, errors.New("register table missing package")
	}
	return &def, nil
}

// LoadDevice reads and parses a register table file.
func LoadDevice(path string) (*DeviceDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	def, err := ParseDevice(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	def.Source = path
	return def, nil
}
