package cli

import (
	"context"
	"fmt"

	"github.com/mddlabs/mddctl/internal/client/router"
	"github.com/mddlabs/mddctl/pkg/api"
)

func (c *Cli) runDrafts(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "list" {
		return c.listDrafts(ctx)
	}

	action := args[0]
	if len(args) < 2 {
		return fmt.Errorf("usage: mddctl drafts %s <id>", action)
	}
	id := args[1]

	switch action {
	case "show":
		return c.showDraft(ctx, id)
	case "publish":
		// Publishing talks to the server, so it goes through the guarded
		// route even though drafts themselves are local.
		return c.router.Navigate(ctx, router.RoutePublishDraft, []string{id})
	case "delete":
		if err := c.drafts.DeleteDraft(ctx, id); err != nil {
			return err
		}
		c.io.Printf("✓ Draft %s deleted.\n", id)
		return nil
	default:
		return fmt.Errorf("unknown drafts action %q (want list, show, publish or delete)", action)
	}
}

func (c *Cli) listDrafts(ctx context.Context) error {
	drafts, err := c.drafts.ListDrafts(ctx)
	if err != nil {
		return err
	}

	if len(drafts) == 0 {
		c.io.Println("No local drafts. Create one with 'mddctl create-article --draft'.")
		return nil
	}

	for _, draft := range drafts {
		c.io.Printf("%s  %s\n", draft.UpdatedAt.Format("2006-01-02 15:04"), draft.Title)
		c.io.Printf("    id: %s | topic: %s\n", draft.ID, draft.TopicID)
	}
	return nil
}

func (c *Cli) showDraft(ctx context.Context, id string) error {
	draft, err := c.drafts.GetDraft(ctx, id)
	if err != nil {
		return err
	}

	c.io.Printf("=== %s (draft) ===\n", draft.Title)
	c.io.Printf("topic: %s | updated %s\n", draft.TopicID, draft.UpdatedAt.Format("2006-01-02 15:04"))
	c.io.Println("")
	c.io.Println(draft.Content)
	return nil
}

// runPublishDraft sends the draft through the regular article gateway and
// deletes it locally only after the server accepted it.
func (c *Cli) runPublishDraft(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: mddctl drafts publish <id>")
	}
	id := args[0]

	draft, err := c.drafts.GetDraft(ctx, id)
	if err != nil {
		return err
	}

	req := api.CreateArticleRequest{
		Title:   draft.Title,
		Content: draft.Content,
		TopicID: draft.TopicID,
	}
	if err := c.api.CreateArticle(ctx, req); err != nil {
		return err
	}

	if err := c.drafts.DeleteDraft(ctx, id); err != nil {
		return fmt.Errorf("article published but draft cleanup failed: %w", err)
	}

	c.io.Println("✓ Draft published!")
	return nil
}
