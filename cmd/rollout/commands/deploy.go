package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rollout/internal/app"
	"go.trai.ch/rollout/internal/core/domain"
)

func (c *CLI) newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Install or update the service on the target hosts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hosts, _ := cmd.Flags().GetStringSlice("hosts")
			mode, _ := cmd.Flags().GetString("mode")

			return c.app.Deploy(cmd.Context(), app.DeployOptions{
				Hosts: hosts,
				Mode:  mode,
			})
		},
	}
	cmd.Flags().StringSliceP("hosts", "H", nil, "Comma separated target hosts (default: deploy.hosts)")
	cmd.Flags().StringP("mode", "m", string(domain.ModeDryRun), "Deploy mode: dryrun or full")
	return cmd
}
