// Package mocks provides centralized mock implementations for testing.
//
// Store mocks are built on testify/mock so tests can set expectations per call:
//
//	users := new(mocks.TestifyMockUserStore)
//	users.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, store.ErrUserNotFound)
//
// Service mocks (MockJWTService, MockPasswordHasher) use function fields with
// defaults, which keeps handler tests short when only one method matters.
package mocks
