//go:build integration
// +build integration

package persistence

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	code := m.Run()
	terminatePostgres()
	os.Exit(code)
}
