package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/devsocial/pkg/api"
)

func (c *Cli) registerCommand() *cobra.Command {
	var req api.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRegister(cmd.Context(), req)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Display name (prompted if empty)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email (prompted if empty)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (not recommended, prompted if empty)")

	return cmd
}

func (c *Cli) runRegister(ctx context.Context, req api.RegisterRequest) error {
	c.io.Println(titleStyle.Render("Registration"))

	var err error
	if req.Name == "" {
		if req.Name, err = c.io.ReadInput("Name: "); err != nil {
			return fmt.Errorf("failed to read name: %w", err)
		}
	}
	if req.Email == "" {
		if req.Email, err = c.io.ReadInput("Email: "); err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}
	if req.Password == "" {
		if req.Password, err = c.io.ReadPassword("Password (min 6 chars): "); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		// Подтверждение пароля только при интерактивном вводе
		confirm, err := c.io.ReadPassword("Confirm password: ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if req.Password != confirm {
			return fmt.Errorf("passwords do not match")
		}
	}

	resp, err := c.api.Register(ctx, req)
	if err != nil {
		return err
	}

	session, err := c.saveSession(ctx, resp.Token)
	if err != nil {
		return err
	}

	c.io.Println(successStyle.Render("✓ Registration successful!"))
	c.io.Printf("Logged in as %s <%s>\n", session.Name, session.Email)

	return nil
}
