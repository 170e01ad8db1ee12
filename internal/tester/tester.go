package tester

import (
	"os"

	"github.com/deanmoses/flipfix/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testPath = "../../.test/"
)

var (
	db *gorm.DB
)

// Setup opens a fresh sqlite database for one test package. The name
// keeps packages running in parallel out of each other's files.
func Setup(name string) {
	RemoveDBFile(name)

	_ = os.Setenv("ENV", "test")

	err := os.MkdirAll(testPath+"db", os.ModePerm)
	if err != nil {
		panic(err)
	}

	db, err = gorm.Open(sqlite.Open(testPath+"db/"+name+".db"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	err = model.Migrate(db)
	if err != nil {
		panic(err)
	}
}

func TestDB() *gorm.DB {
	return db
}

func RemoveDBFile(name string) {
	err := os.RemoveAll(testPath + "db/" + name + ".db")
	if err != nil {
		panic(err)
	}
}
