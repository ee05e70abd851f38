package format

import (
	"encoding/json"

	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func jsonUnmarshal(in []byte, obj any) error {
	return json.Unmarshal(in, obj)
}

func yamlUnmarshal(in []byte, obj any) error {
	return yaml.Unmarshal(in, obj)
}

func tomlUnmarshal(in []byte, obj any) error {
	return toml.Unmarshal(in, obj)
}

func propertiesUnmarshal(in []byte, obj any) error {
	p, err := properties.Load(in, properties.UTF8)
	if err != nil {
		return err
	}

	return p.Decode(obj)
}
