package core

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pokeknower/pokeknower/internal/assets/typedata"
)

// LoadTypeInfo parses the embedded type metadata. The asset ships inside the
// binary, so a parse failure means a broken build rather than bad input.
func LoadTypeInfo() ([]TypeInfo, error) {
	var infos []TypeInfo
	if err := yaml.Unmarshal(typedata.YAML, &infos); err != nil {
		return nil, fmt.Errorf("parse embedded type metadata: %w", err)
	}
	if len(infos) != len(canonicalTypes) {
		return nil, fmt.Errorf("embedded type metadata has %d entries, want %d", len(infos), len(canonicalTypes))
	}
	return infos, nil
}
