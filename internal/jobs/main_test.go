package jobs

import (
	"os"
	"testing"

	"github.com/deanmoses/flipfix/internal/tester"
)

func TestMain(m *testing.M) {
	tester.Setup("jobs")
	code := m.Run()

	os.Exit(code)
}
