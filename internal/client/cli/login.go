package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/devsocial/pkg/api"
)

func (c *Cli) loginCommand() *cobra.Command {
	var req api.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the session locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLogin(cmd.Context(), req)
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Email (prompted if empty)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (not recommended, prompted if empty)")

	return cmd
}

func (c *Cli) runLogin(ctx context.Context, req api.LoginRequest) error {
	c.io.Println(titleStyle.Render("Login"))

	var err error
	if req.Email == "" {
		if req.Email, err = c.io.ReadInput("Email: "); err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}
	if req.Password == "" {
		if req.Password, err = c.io.ReadPassword("Password: "); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	resp, err := c.api.Login(ctx, req)
	if err != nil {
		return err
	}

	session, err := c.saveSession(ctx, resp.Token)
	if err != nil {
		return err
	}

	c.io.Println(successStyle.Render("✓ Login successful!"))
	c.io.Printf("Logged in as %s <%s>\n", session.Name, session.Email)
	if session.ExpiresAt != 0 {
		c.io.Printf("Token expires: %s\n", time.Unix(session.ExpiresAt, 0).Format(time.RFC3339))
	}

	return nil
}
