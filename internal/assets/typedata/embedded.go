package typedata

import _ "embed"

// YAML is the embedded canonical type metadata (names, colors, icons) served
// by the /api/types endpoint and used for CLI rendering.
//
//go:embed types.yaml
var YAML []byte
