package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/devsocial/internal/client/api"
	"github.com/iudanet/devsocial/internal/client/iocli"
	"github.com/iudanet/devsocial/internal/client/storage/boltdb"
)

// Run parses args and executes the matching command
func Run(ctx context.Context, io iocli.IO, version string, args []string) error {
	c := &Cli{io: io, now: time.Now}
	defer c.close()

	root := c.rootCommand(version)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

func (c *Cli) rootCommand(version string) *cobra.Command {
	var (
		serverURL string
		dbPath    string
	)

	root := &cobra.Command{
		Use:           "devsocial",
		Short:         "DevSocial terminal client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.server == "" {
				c.server = serverURL
			}
			if c.api == nil {
				c.api = api.NewClient(serverURL)
			}
			if c.store == nil {
				store, err := boltdb.New(cmd.Context(), dbPath)
				if err != nil {
					return fmt.Errorf("failed to open local database: %w", err)
				}
				c.store = store
				c.closer = store.Close
			}
			return nil
		},
	}

	root.SetOut(c.io)
	root.SetErr(c.io)

	root.PersistentFlags().StringVar(&serverURL, "server", DefaultServerURL, "Server URL including the API prefix")
	root.PersistentFlags().StringVar(&dbPath, "db", boltdb.DefaultPath(), "Path to local database")

	root.AddCommand(
		c.registerCommand(),
		c.loginCommand(),
		c.logoutCommand(),
		c.statusCommand(),
		c.postCommand(),
		c.feedCommand(),
		c.showCommand(),
		c.deleteCommand(),
		c.likeCommand(),
		c.unlikeCommand(),
		c.commentCommand(),
		c.uncommentCommand(),
	)

	return root
}
