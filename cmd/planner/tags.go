package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"travelplanner/internal/services"
)

func newTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the interests a trip can be planned around",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, tag := range services.NewTagService().GetAllTags(cmd.Context()) {
				fmt.Fprintf(out, "%s  %-12s %s\n", tag.Icon, tag.ID, tag.Label)
			}
			return nil
		},
	}
}
