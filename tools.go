//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose: inspect or roll back the kv
//   migrations on a postgres store by hand (the binary applies them embedded)
