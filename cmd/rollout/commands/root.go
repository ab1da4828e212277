// Package commands implements the CLI commands for rollout.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rollout/internal/app"
	"go.trai.ch/rollout/internal/build"
)

// CLI represents the command line interface for rollout.
type CLI struct {
	app     Application
	logs    LogFormat
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	SetConfigFile(path string)
	Manifest(ctx context.Context) (string, error)
	Package(ctx context.Context) (string, error)
	Publish(ctx context.Context, rpmPath string) error
	Deploy(ctx context.Context, opts app.DeployOptions) error
	Release(ctx context.Context, opts app.ReleaseOptions) error
	Build(ctx context.Context) error
	Test(ctx context.Context) error
}

// LogFormat switches the log output between text and JSON.
type LogFormat interface {
	SetJSON(enabled bool)
}

// New creates a new CLI instance with the given app. logs may be nil.
func New(a Application, logs LogFormat) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rollout",
		Short:         "Package, publish, deploy and release a service",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to rollout.yaml (default: discovered from the working directory)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		logs:    logs,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		configFile, _ := cmd.Flags().GetString("config")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")

		c.app.SetConfigFile(configFile)
		if c.logs != nil {
			c.logs.SetJSON(jsonLogs)
		}
	}

	rootCmd.AddCommand(c.newManifestCmd())
	rootCmd.AddCommand(c.newPackageCmd())
	rootCmd.AddCommand(c.newPublishCmd())
	rootCmd.AddCommand(c.newDeployCmd())
	rootCmd.AddCommand(c.newReleaseCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newTestCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
