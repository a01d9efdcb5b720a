package server

import (
	"fmt"
	"strings"
)

// normalizeProviderName lower-cases raw, or derives the package name of the
// provider's type ("*nbastats.Client" becomes "nbastats"). Metric labels and
// logs use it for both roster and shot providers.
func normalizeProviderName(raw string, provider any) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if provider == nil {
		return "provider"
	}
	typeName := strings.TrimLeft(fmt.Sprintf("%T", provider), "*")
	if pkg, _, ok := strings.Cut(typeName, "."); ok && pkg != "" {
		return strings.ToLower(pkg)
	}
	return strings.ToLower(typeName)
}
