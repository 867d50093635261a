// Package testutils provides testing utilities for the bookmark API.
//
// It contains in-memory implementations of the store interfaces, builders for
// domain entities and helpers for driving an http.Handler with JSON requests.
// Tests that need a real database use the testdb package instead.
//
// # In-memory stores
//
//	users := testutils.NewMemoryUserStore()
//	bookmarks := testutils.NewMemoryBookmarkStore(users)
//
// The stores enforce the same contracts as the Postgres stores: unique emails,
// insertion-ordered listing and the entity-specific not-found errors.
//
// # Test entities
//
//	user := testutils.MustCreateUserForTest(t, testutils.WithUserEmail("a@example.com"))
//	bookmark := testutils.MustCreateBookmarkForTest(t, user.ID, testutils.WithBookmarkTitle("Go"))
package testutils
