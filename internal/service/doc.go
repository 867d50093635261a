// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the stores
// (defined in internal/store) to fulfill application features.
//
// Three services live here:
//
//   - AuthService registers users and exchanges credentials for access tokens.
//   - UserService reads and edits the authenticated user's profile.
//   - BookmarkService manages bookmarks and enforces ownership through internal/authz.
//
// Services receive their dependencies through constructor injection and depend
// only on store interfaces, never on a concrete database. Expected failures are
// reported as the sentinel errors in errors.go; anything unexpected is wrapped
// in *ServiceError so the API layer can map it to a generic 500.
package service
