package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rollout/internal/app"
	"go.trai.ch/rollout/internal/core/domain"
)

func (c *CLI) newReleaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "release snapshot|final|testfinal",
		Short:     "Tag a release, package and publish it, then bump the version",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.ReleaseSnapshot), string(domain.ReleaseFinal), string(domain.ReleaseTestFinal)},
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := domain.ParseReleaseType(args[0])
			if err != nil {
				return err
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			skipChecks, _ := cmd.Flags().GetBool("skip-checks")
			skipBuild, _ := cmd.Flags().GetBool("skip-build")

			// testfinal rehearses a final release without the checks and
			// without commits or tags.
			if typ == domain.ReleaseTestFinal {
				dryRun = true
				skipChecks = true
			}

			return c.app.Release(cmd.Context(), app.ReleaseOptions{
				Type:       typ,
				DryRun:     dryRun,
				SkipChecks: skipChecks,
				SkipBuild:  skipBuild,
			})
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Do not commit, tag, publish or push")
	cmd.Flags().Bool("skip-checks", false, "Allow releasing from any branch with uncommitted changes")
	cmd.Flags().Bool("skip-build", false, "Do not build and test before the release commit")
	return cmd
}
