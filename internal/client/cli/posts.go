package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *Cli) postCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "post [text]",
		Short: "Publish a new post (text is prompted if omitted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPost(cmd.Context(), strings.Join(args, " "))
		},
	}
}

func (c *Cli) runPost(ctx context.Context, text string) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	if strings.TrimSpace(text) == "" {
		if text, err = c.io.ReadInput("Text: "); err != nil {
			return fmt.Errorf("failed to read text: %w", err)
		}
	}

	post, err := c.api.CreatePost(ctx, session.Token, text)
	if err != nil {
		return apiError(err)
	}

	c.io.Println(successStyle.Render("✓ Post published"))
	c.io.Println(renderPost(post, session.UserID))

	return nil
}

func (c *Cli) feedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Show all posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFeed(cmd.Context())
		},
	}
}

func (c *Cli) runFeed(ctx context.Context) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	posts, err := c.api.ListPosts(ctx, session.Token)
	if err != nil {
		return apiError(err)
	}

	c.io.Println(titleStyle.Render("Feed"))

	if len(posts) == 0 {
		c.io.Println("No posts yet.")
		c.io.Println("Use 'devsocial post <text>' to write the first one.")
		return nil
	}

	c.io.Printf("Found %d post(s):\n\n", len(posts))
	c.io.Println(renderFeed(posts, session.UserID))

	return nil
}

func (c *Cli) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <post-id>",
		Short: "Show a post with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(cmd.Context(), args[0])
		},
	}
}

func (c *Cli) runShow(ctx context.Context, postID string) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	post, err := c.api.GetPost(ctx, session.Token, postID)
	if err != nil {
		return apiError(err)
	}

	c.io.Println(renderPostDetails(post, session.UserID))

	return nil
}

func (c *Cli) deleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <post-id>",
		Short: "Delete your own post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDelete(cmd.Context(), args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Do not ask for confirmation")

	return cmd
}

func (c *Cli) runDelete(ctx context.Context, postID string, force bool) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	if !force {
		answer, err := c.io.ReadInput(fmt.Sprintf("Delete post %s? [y/N]: ", postID))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if answer = strings.ToLower(strings.TrimSpace(answer)); answer != "y" && answer != "yes" {
			c.io.Println("Cancelled.")
			return nil
		}
	}

	if err := c.api.DeletePost(ctx, session.Token, postID); err != nil {
		return apiError(err)
	}

	c.io.Println(successStyle.Render("✓ Post removed"))

	return nil
}
