package cmd

import (
	"github.com/deanmoses/flipfix/internal/config"
	"github.com/deanmoses/flipfix/internal/store"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "database commands",
}

func init() {
	dbCmd.AddCommand(migrateCmd())
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.GetDB(config.LoadConfig())
			if err != nil {
				return err
			}
			if err := store.NewGormStore(db).Migrate(); err != nil {
				color.Red("migration failed: %v", err)
				return err
			}
			color.Green("database migrated")
			return nil
		},
	}
}
