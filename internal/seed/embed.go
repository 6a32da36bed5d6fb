package seed

import _ "embed"

// DefaultData is the inventory every process starts with unless a seed file is configured
//
//go:embed data/inventory.json
var DefaultData []byte

// Schema is the JSON schema every seed file must satisfy
//
//go:embed data/inventory.schema.json
var Schema []byte
