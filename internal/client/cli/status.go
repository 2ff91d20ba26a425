package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/devsocial/internal/client/storage"
)

func (c *Cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"whoami"},
		Short:   "Show the logged in user",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStatus(cmd.Context())
		},
	}
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println(titleStyle.Render("Authentication Status"))

	session, err := c.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Status: Not authenticated")
			c.io.Println("Run 'devsocial login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	if session.Expired(c.now()) {
		c.io.Println(warnStyle.Render("⚠ Token has expired. Please login again."))
		return nil
	}

	// Токен проверяет только сервер
	user, err := c.api.Me(ctx, session.Token)
	if err != nil {
		return apiError(err)
	}

	c.io.Println("Status: Authenticated")
	c.io.Println(renderUser(user))
	c.io.Printf("Server: %s\n", session.Server)
	if session.ExpiresAt != 0 {
		expiresAt := time.Unix(session.ExpiresAt, 0)
		c.io.Printf("Token expires: %s (in %s)\n", expiresAt.Format(time.RFC3339), expiresAt.Sub(c.now()).Round(time.Second))
	}

	return nil
}
