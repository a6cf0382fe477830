package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/angelmondragon/printshop-backend/pkg/migrate"
)

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}

func TestMigrationDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations: %v", err)
	}
}

func TestCustomersMigrationEnforcesPhoneUniqueness(t *testing.T) {
	content := readMigration(t, "*_create_customers.sql")
	for _, sub := range []string{
		"CREATE TABLE customers",
		"CREATE UNIQUE INDEX idx_customers_phone ON customers (phone)",
		"DROP TABLE customers",
	} {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestOrderItemsMigrationCascades(t *testing.T) {
	content := readMigration(t, "*_create_order_items.sql")
	for _, sub := range []string{
		"REFERENCES orders(id) ON DELETE CASCADE",
		"item_type TEXT NOT NULL",
		"item_data TEXT NOT NULL",
		"price NUMERIC(12,2) NOT NULL",
		"position INTEGER NOT NULL DEFAULT 0",
	} {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestDialectMapping(t *testing.T) {
	if d, err := migrate.DialectFor("sqlite"); err != nil || d != "sqlite3" {
		t.Fatalf("sqlite dialect: %q, %v", d, err)
	}
	if d, err := migrate.DialectFor("postgres"); err != nil || d != "postgres" {
		t.Fatalf("postgres dialect: %q, %v", d, err)
	}
	if _, err := migrate.DialectFor("mysql"); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
