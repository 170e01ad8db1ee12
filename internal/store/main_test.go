package store

import (
	"os"
	"testing"

	"github.com/deanmoses/flipfix/internal/tester"
)

func TestMain(m *testing.M) {
	tester.Setup("store")
	code := m.Run()

	os.Exit(code)
}
