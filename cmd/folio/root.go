// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"github.com/spf13/cobra"

	"github.com/taibuivan/folio/internal/platform/constants"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   constants.AppName,
		Short: "Folio - portfolio content API and résumé renderer",
		Long: `Folio serves the portfolio site's content (projects, skills, experience,
blog, contact messages, site settings), the admin API behind an allow-listed
sign-in, and a PDF résumé in three templates.

Configuration comes from the environment; a .env file in the working
directory is read first when present.`,
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newResumeCmd(),
		newImportPostsCmd(),
		newHashPasswordCmd(),
	)
	return root
}
