package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bibliofile/bibliofile/pkg/bibliofile"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the shelf version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("shelf", bibliofile.Version)
	},
}
