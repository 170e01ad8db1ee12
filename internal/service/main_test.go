package service

import (
	"os"
	"testing"

	"github.com/deanmoses/flipfix/internal/tester"
)

func TestMain(m *testing.M) {
	tester.Setup("service")
	code := m.Run()

	os.Exit(code)
}
