package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"github.com/sirupsen/logrus"
)

// Applies the catalog schema (products, categories, product_categories,
// order_items, outbox_events) to the Cloud Spanner database named by
// SPANNER_DATABASE. Every migrations/*.sql file is applied in lexical
// order, so numbered files stack. Meant for the emulator in local dev:
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/catalog
//	go run ./cmd/migrate
func main() {
	logger := logrus.New()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := os.Getenv("SPANNER_DATABASE")
	if db == "" {
		logger.Fatal("SPANNER_DATABASE is required (e.g. projects/test-project/instances/emulator-instance/databases/catalog)")
	}

	paths, err := filepath.Glob(filepath.Join("migrations", "*.sql"))
	if err != nil {
		logger.Fatalf("list migrations: %v", err)
	}
	if len(paths) == 0 {
		logger.Fatal("no migration files found under migrations/")
	}
	sort.Strings(paths)

	var stmts []string
	for _, path := range paths {
		fileStmts, err := statementsIn(path)
		if err != nil {
			logger.Fatalf("read %s: %v", path, err)
		}
		logger.Infof("loaded %d statements from %s", len(fileStmts), path)
		stmts = append(stmts, fileStmts...)
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		logger.Fatalf("database admin client: %v", err)
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		logger.Fatalf("UpdateDatabaseDdl: %v", err)
	}
	if err := op.Wait(ctx); err != nil {
		logger.Fatalf("UpdateDatabaseDdl wait: %v", err)
	}

	logger.Infof("applied %d DDL statements from %d files to %s", len(stmts), len(paths), db)
}

// statementsIn splits one DDL file into statements. The admin API takes
// statements without trailing semicolons.
func statementsIn(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, part := range strings.Split(strings.ReplaceAll(string(b), "\r\n", "\n"), ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out, nil
}
