package cmd

import (
	"github.com/deanmoses/flipfix/internal/config"
	"github.com/deanmoses/flipfix/internal/jobs"
	"github.com/deanmoses/flipfix/internal/links"
	"github.com/deanmoses/flipfix/internal/store"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func reindexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "rescan all content and rebuild the reference edge table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cnf := config.LoadConfig()
			db, err := config.GetDB(cnf)
			if err != nil {
				return err
			}
			recordStore := store.NewGormStore(db)
			engine := links.NewEngine(links.DefaultRegistry(), store.NewLinkResolver(recordStore))

			jobs.NewReferenceAudit(cnf.AuditSchedule, recordStore, engine).Run()
			color.Green("reference reindex complete")
			return nil
		},
	}
}
