package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "Print the RPM %files manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := c.app.Manifest(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Print(text)
			return nil
		},
	}
}

func (c *CLI) newPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "package",
		Short: "Build the RPM from the release binary and assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rpmPath, err := c.app.Package(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Println(rpmPath)
			return nil
		},
	}
}

func (c *CLI) newPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish [rpm]",
		Short: "Upload an RPM to the YUM repository host",
		Long:  "Upload an RPM to the YUM repository host. Without an argument the last package built is published.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rpmPath string
			if len(args) == 1 {
				rpmPath = args[0]
			}
			return c.app.Publish(cmd.Context(), rpmPath)
		},
	}
}
