package server

import "time"

// writeTimeout must outlast a shot log request, which chains several
// rate-limited stats calls.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 90 * time.Second
	idleTimeout       = 120 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 15 * time.Second
