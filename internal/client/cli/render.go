package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/iudanet/devsocial/internal/models"
)

const dateLayout = "2006-01-02 15:04"

// renderPost рисует карточку поста. me отмечает собственные посты и лайки
func renderPost(p *models.Post, me string) string {
	author := authorStyle.Render(p.Name)
	if p.UserID == me {
		author += mutedStyle.Render(" (you)")
	}

	liked := ""
	if me != "" && p.HasLike(me) {
		liked = " · liked by you"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		author+"  "+mutedStyle.Render(p.CreatedAt.Local().Format(dateLayout)),
		p.Text,
		mutedStyle.Render(fmt.Sprintf("♥ %d · %d comment(s)%s · id %s", len(p.Likes), len(p.Comments), liked, p.ID)),
	)

	return cardStyle.Render(body)
}

func renderComment(cm models.Comment, me string) string {
	author := authorStyle.Render(cm.Name)
	if cm.UserID == me {
		author += mutedStyle.Render(" (you)")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		author+"  "+mutedStyle.Render(cm.CreatedAt.Local().Format(dateLayout)),
		cm.Text,
		mutedStyle.Render("id "+cm.ID),
	)

	return commentStyle.Render(body)
}

// renderPostDetails рисует пост вместе с комментариями
func renderPostDetails(p *models.Post, me string) string {
	parts := []string{renderPost(p, me)}
	for _, cm := range p.Comments {
		parts = append(parts, renderComment(cm, me))
	}
	return strings.Join(parts, "\n")
}

func renderFeed(posts []*models.Post, me string) string {
	parts := make([]string, 0, len(posts))
	for _, p := range posts {
		parts = append(parts, renderPost(p, me))
	}
	return strings.Join(parts, "\n\n")
}

func renderUser(u *models.User) string {
	rows := []string{
		mutedStyle.Render("Name:   ") + u.Name,
		mutedStyle.Render("Email:  ") + u.Email,
		mutedStyle.Render("ID:     ") + u.ID,
		mutedStyle.Render("Avatar: ") + u.Avatar,
	}
	if !u.CreatedAt.IsZero() {
		rows = append(rows, mutedStyle.Render("Joined: ")+u.CreatedAt.Local().Format(time.DateOnly))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
