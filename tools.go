//go:build tools

// Package tools pins development CLIs in go.mod: goose for migrations,
// swag for the OpenAPI docs, mockery for test doubles, golangci-lint for CI.
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
)
