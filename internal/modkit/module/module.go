// Package module defines the contract every API module satisfies
package module

import (
	phttp "c4ctexts/internal/platform/net/http"
)

// Module is what the API mounts: routes under Prefix and an optional ports bundle
// it lives in its own package so a module can export its ports type without import cycles
type Module interface {
	Name() string
	Prefix() string
	MountRoutes(r phttp.Router)
	Ports() any
}
