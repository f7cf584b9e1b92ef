package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTypeInfo(t *testing.T) {
	infos, err := LoadTypeInfo()
	require.NoError(t, err)
	require.Len(t, infos, 18)

	byName := make(map[TypeName]TypeInfo, len(infos))
	for _, info := range infos {
		assert.NotEmpty(t, info.Color)
		byName[info.Name] = info
	}

	// Every entry must be a canonical type.
	for name := range byName {
		_, ok := ParseType(string(name))
		assert.True(t, ok, "non-canonical type %q in embedded metadata", name)
	}

	assert.Equal(t, "#F8D030", byName[TypeElectric].Color)
}
