package ciutil

import "log/slog"

// Database URL environment variables, in order of preference.
const (
	EnvTestDatabaseURL = "BOOKMARK_TEST_DATABASE_URL"
	EnvDatabaseURL     = "DATABASE_URL"
)

// TestDatabaseURL returns the URL of the database integration tests should use,
// or "" when none is configured.
func TestDatabaseURL(logger *slog.Logger) string {
	return GetEnvWithFallbacks([]string{EnvTestDatabaseURL, EnvDatabaseURL}, "", logger)
}

// RequireDatabase reports whether a missing test database is a failure rather
// than a reason to skip. CI runs always provide one.
func RequireDatabase() bool {
	return IsCI()
}
