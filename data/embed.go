// Package data embeds the dictionary data files.
package data

import _ "embed"

//go:embed abbreviations.yaml
var Abbreviations []byte
