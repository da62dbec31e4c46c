//go:build tools
// +build tools

// Package tools pins the code generators used by `go generate`
// (mockgen for the contract mocks) so go.mod and go.sum track them.
package classroom_relay

import (
	_ "go.uber.org/mock/mockgen"
)
