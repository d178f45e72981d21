// Package spec embeds the OpenAPI specification for the idea board API.
// It is imported by the HTTP router to serve the spec at /openapi.yaml.
// The handler/gen package is generated from the same file.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
// Serving it from the binary means the spec and the running code are always in sync.
//
//go:embed openapi.yaml
var OpenAPI []byte
