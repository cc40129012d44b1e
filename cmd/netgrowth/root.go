package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=…".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "netgrowth",
		Short: "netgrowth - growth models for scale-free networks",
		Long: `netgrowth grows simple undirected graphs with uniform-attachment,
no-growth preferential-attachment and mixed preferential/random models,
then fits y = b·x^a to the degree distribution and degree correlation.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "netgrowth %s\n", version)
		},
	}
}
