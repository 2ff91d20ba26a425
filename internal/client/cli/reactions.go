package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *Cli) likeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id>",
		Short: "Like a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLike(cmd.Context(), args[0], true)
		},
	}
}

func (c *Cli) unlikeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unlike <post-id>",
		Short: "Remove your like from a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLike(cmd.Context(), args[0], false)
		},
	}
}

func (c *Cli) runLike(ctx context.Context, postID string, like bool) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	call, verb := c.api.Like, "Liked"
	if !like {
		call, verb = c.api.Unlike, "Unliked"
	}

	likes, err := call(ctx, session.Token, postID)
	if err != nil {
		return apiError(err)
	}

	c.io.Println(successStyle.Render(fmt.Sprintf("✓ %s post %s", verb, postID)))
	c.io.Printf("♥ %d like(s)\n", len(likes))

	return nil
}

func (c *Cli) commentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "comment <post-id> [text]",
		Short: "Comment on a post (text is prompted if omitted)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runComment(cmd.Context(), args[0], strings.Join(args[1:], " "))
		},
	}
}

func (c *Cli) runComment(ctx context.Context, postID, text string) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	if strings.TrimSpace(text) == "" {
		if text, err = c.io.ReadInput("Comment: "); err != nil {
			return fmt.Errorf("failed to read comment: %w", err)
		}
	}

	comments, err := c.api.Comment(ctx, session.Token, postID, text)
	if err != nil {
		return apiError(err)
	}

	c.io.Println(successStyle.Render("✓ Comment added"))
	if len(comments) > 0 {
		// Новые комментарии первыми
		c.io.Println(renderComment(comments[0], session.UserID))
	}

	return nil
}

func (c *Cli) uncommentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "uncomment <post-id> <comment-id>",
		Short: "Remove your comment from a post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runUncomment(cmd.Context(), args[0], args[1])
		},
	}
}

func (c *Cli) runUncomment(ctx context.Context, postID, commentID string) error {
	session, err := c.session(ctx)
	if err != nil {
		return err
	}

	comments, err := c.api.Uncomment(ctx, session.Token, postID, commentID)
	if err != nil {
		return apiError(err)
	}

	c.io.Println(successStyle.Render("✓ Comment removed"))
	c.io.Printf("%d comment(s) left\n", len(comments))

	return nil
}
