// Package testdb provides helpers for tests that need a real PostgreSQL database.
//
// Tests using it are tagged with the "integration" build tag and skip themselves
// when BOOKMARK_TEST_DATABASE_URL is unset:
//
//	//go:build integration
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        users := postgres.NewPostgresUserStore(tx, nil)
//	        // ...
//	    })
//	}
//
// The schema is brought up to date with the embedded goose migrations once per
// connection, and every test body runs inside a transaction that is rolled back.
package testdb
