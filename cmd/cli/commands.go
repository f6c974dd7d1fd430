package main

import (
	"github.com/spf13/cobra"

	"famtree/internal/transport/console"
)

var (
	app *console.Handler

	rootCmd = &cobra.Command{
		Use:   "famtree",
		Short: "Explore a family tree from the terminal",
		Long: `famtree answers relationship queries (parents, grandparents, siblings,
cousins, immediate and extended family) and simple statistics over a fixed
in-memory family. Run without arguments for the interactive menu, or use a
subcommand for one-shot queries.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunMenu(cmd.Context())
		},
	}

	memberCmd = &cobra.Command{
		Use:   "member [name]",
		Short: "Show a member's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Details(cmd.Context(), args[0])
		},
	}
	parentsCmd = &cobra.Command{
		Use:   "parents [name]",
		Short: "List a member's parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Parents(cmd.Context(), args[0])
		},
	}
	grandparentsCmd = &cobra.Command{
		Use:   "grandparents [name]",
		Short: "List a member's grandparents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Grandparents(cmd.Context(), args[0])
		},
	}
	siblingsCmd = &cobra.Command{
		Use:   "siblings [name]",
		Short: "List a member's siblings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Siblings(cmd.Context(), args[0])
		},
	}
	cousinsCmd = &cobra.Command{
		Use:   "cousins [name]",
		Short: "List a member's cousins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Cousins(cmd.Context(), args[0])
		},
	}
	immediateCmd = &cobra.Command{
		Use:   "immediate [name]",
		Short: "List a member's immediate family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ImmediateFamily(cmd.Context(), args[0])
		},
	}
	extendedCmd = &cobra.Command{
		Use:   "extended [name]",
		Short: "List a member's extended family (living members only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ExtendedFamily(cmd.Context(), args[0])
		},
	}
	calendarCmd = &cobra.Command{
		Use:   "calendar",
		Short: "Show the family birthday calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Calendar(cmd.Context())
		},
	}
	agesCmd = &cobra.Command{
		Use:   "ages",
		Short: "Show the average age at death",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.AverageAgeAtDeath(cmd.Context())
		},
	}
	childrenCmd = &cobra.Command{
		Use:   "children",
		Short: "Show children counts and the average per member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ChildrenStatistics(cmd.Context())
		},
	}
)

func init() {
	rootCmd.AddCommand(
		memberCmd, parentsCmd, grandparentsCmd, siblingsCmd, cousinsCmd,
		immediateCmd, extendedCmd, calendarCmd, agesCmd, childrenCmd,
	)
}
