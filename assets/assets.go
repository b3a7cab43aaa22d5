// Package assets embeds the stock universe files.
package assets

import "embed"

// Universes holds universes/*.json.
//
//go:embed universes/*.json
var Universes embed.FS

// DefaultUniverse is the file loaded when no other universe is configured.
const DefaultUniverse = "universes/sol.json"
