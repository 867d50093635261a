// Package ciutil detects continuous-integration environments and resolves
// environment-driven settings for tests that need external services.
package ciutil
