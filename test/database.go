// Package test provides helpers shared by the test suites.
package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path for a fresh database file. It lives in a
// per-test temporary directory, so every test runs against its own
// empty database and cleanup is automatic.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.New().String()+".db")
}
