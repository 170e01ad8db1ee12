package cmd

import (
	"os"
	"strconv"

	"github.com/deanmoses/flipfix/internal/config"
	"github.com/deanmoses/flipfix/internal/links"
	"github.com/deanmoses/flipfix/internal/service"
	"github.com/deanmoses/flipfix/internal/store"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func backlinksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backlinks <kind> <id>",
		Short: "list the records whose text mentions a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				color.Red("invalid id: %s", args[1])
				return err
			}

			db, err := config.GetDB(config.LoadConfig())
			if err != nil {
				return err
			}
			recordStore := store.NewGormStore(db)
			registry := links.DefaultRegistry()
			engine := links.NewEngine(registry, store.NewLinkResolver(recordStore))

			backlinks, err := service.NewBacklinkService(recordStore, engine, registry).
				ListBacklinks(cmd.Context(), links.Kind(args[0]), uint(id))
			if err != nil {
				return err
			}

			if len(backlinks) == 0 {
				color.Yellow("no backlinks")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Kind", "ID", "Label", "URL"})
			for _, bl := range backlinks {
				table.Append([]string{bl.SourceKind, strconv.FormatUint(uint64(bl.SourceID), 10), bl.Label, bl.URL})
			}
			table.Render()
			return nil
		},
	}
}
