package surrealdb

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bobmcallan/insurancebuddy/internal/common"
	tcommon "github.com/bobmcallan/insurancebuddy/tests/common"
	surreal "github.com/surrealdb/surrealdb.go"
)

// testDatabaseName builds a unique database name per test.
// SurrealDB rejects "/" in database names, which subtests produce.
func testDatabaseName(t *testing.T, prefix string) string {
	sanitized := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return fmt.Sprintf("%s_%s_%d", prefix, sanitized, time.Now().UnixNano()%100000)
}

// testDB returns a connection to a fresh database on the shared container,
// with the site tables defined. Skipped unless BUDDY_TEST_DOCKER=true.
func testDB(t *testing.T) *surreal.DB {
	t.Helper()

	sc := tcommon.StartSurrealDB(t)
	ctx := context.Background()

	db, err := surreal.New(sc.Address())
	if err != nil {
		t.Fatalf("connect to SurrealDB: %v", err)
	}

	user, pass := sc.Credentials()
	if _, err := db.SignIn(ctx, map[string]interface{}{
		"user": user,
		"pass": pass,
	}); err != nil {
		t.Fatalf("sign in to SurrealDB: %v", err)
	}

	if err := db.Use(ctx, tcommon.StorageNamespace, testDatabaseName(t, "t")); err != nil {
		t.Fatalf("select namespace/database: %v", err)
	}
	if err := defineTables(ctx, db); err != nil {
		t.Fatalf("define tables: %v", err)
	}

	t.Cleanup(func() {
		db.Close(context.Background())
	})

	return db
}

// testLogger returns a silent logger for tests.
func testLogger() *common.Logger {
	return common.NewSilentLogger()
}
