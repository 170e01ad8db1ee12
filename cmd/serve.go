package cmd

import (
	"github.com/deanmoses/flipfix/internal/config"
	"github.com/deanmoses/flipfix/internal/server"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var httpPort string
	command := &cobra.Command{
		Use:   "serve",
		Short: "start the flipfix api server",
		Run: func(cmd *cobra.Command, args []string) {
			if httpPort == "" {
				httpPort = config.LoadConfig().HTTPPort
			}
			server.NewServer(httpPort).Start()
		},
	}
	command.Flags().StringVarP(&httpPort, "port", "p", "", "http port to listen on")

	return command
}
