package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "mcc",
		Short:         "mc-command-center backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	root.AddCommand(serveCommand(), seedAdminCommand())

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Println(fmt.Errorf("mcc: %w", err))
		os.Exit(1)
	}
}
