// Package modkit provides module wiring and core deps
package modkit

import (
	"net/http"

	"c4ctexts/internal/platform/config"
	"c4ctexts/internal/platform/logger"

	"github.com/prometheus/client_golang/prometheus"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// Metrics receives module collectors, nil disables metrics
	Metrics prometheus.Registerer

	// HTTP is the outbound client for upstream calls, nil means a module default
	HTTP *http.Client
}
