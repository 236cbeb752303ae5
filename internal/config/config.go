/*
Package config provides the application configuration for the ptree command.

Configuration files are either YAML or TOML. Values are stored in a koanf
configuration, wrapped by schuko's koanf adapter. Nested tables are addressed
by dot-separated keys, thus

	tracelevel:
	  ptree.build: Debug

is available as key "tracelevel.ptree.build", exactly as if it had been
written as three nested tables. Conf implements
schuko.Configuration and is installed globally by Setup, which configures
tracing as well.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/providers/file"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for configuration files with an unsupported suffix.
var ErrUnknownFormat = errors.New("unknown configuration file format")

// Suffixes lists the file suffixes of supported configuration files.
var Suffixes = []string{"yaml", "yml", "toml"}

// Defaults are set by InitDefaults for keys not present in a configuration.
var Defaults = map[string]interface{}{
	"tracing.adapter":         "go",
	"tracelevel.root":         "Error",
	"panic-on-malformed-tree": false,
}

// Conf is a koanf-backed configuration.
type Conf struct {
	*koanfadapter.KConf
}

var _ schuko.Configuration = (*Conf)(nil)

// New creates an empty configuration.
func New() *Conf {
	return &Conf{KConf: koanfadapter.New(koanf.New("."), "", nil)}
}

// Load reads a configuration file. The format is selected by the file's suffix.
func Load(path string) (*Conf, error) {
	p, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	c := New()
	if err := c.Koanf().Load(file.Provider(path), p); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Locate searches for configuration files of an application at the usual
// places for the operating system, see schuko.LocateConfig.
func Locate(appTag string) []string {
	return schuko.LocateConfig(appTag, "", Suffixes)
}

// LoadDefault loads the first configuration file found by Locate. If there is
// none, an empty configuration is returned.
func LoadDefault(appTag string) (*Conf, error) {
	paths := Locate(appTag)
	if len(paths) == 0 {
		return New(), nil
	}
	return Load(paths[0])
}

// InitDefaults is part of interface schuko.Configuration.
// Keys already present are left untouched.
func (c *Conf) InitDefaults() {
	for k, v := range Defaults {
		if !c.IsSet(k) {
			c.Set(k, v)
		}
	}
}

// IsInteractive is part of interface schuko.Configuration.
func (c *Conf) IsInteractive() bool {
	return c.GetBool("interactive")
}

// --- Parsers ---------------------------------------------------------------

func parserFor(path string) (koanf.Parser, error) {
	switch strings.TrimLeft(strings.ToLower(filepath.Ext(path)), ".") {
	case "yaml", "yml":
		return yamlParser{}, nil
	case "toml":
		return tomlParser{}, nil
	}
	return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// nested splits keys containing dots into nested tables, so that values from
// files and values from Set end up at the same place.
func nested(m map[string]interface{}) map[string]interface{} {
	maps.IntfaceKeysToStrings(m)
	flat, _ := maps.Flatten(m, nil, ".")
	return maps.Unflatten(flat, ".")
}

// yamlParser implements koanf.Parser for YAML.
type yamlParser struct{}

func (yamlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	m := make(map[string]interface{})
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return nested(m), nil
}

func (yamlParser) Marshal(m map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(m)
}

// tomlParser implements koanf.Parser for TOML.
type tomlParser struct{}

func (tomlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	m := make(map[string]interface{})
	if _, err := toml.Decode(string(b), &m); err != nil {
		return nil, err
	}
	return nested(m), nil
}

func (tomlParser) Marshal(m map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
