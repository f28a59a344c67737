package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mddlabs/mddctl/internal/client/storage"
	"github.com/mddlabs/mddctl/internal/forms"
)

func (c *Cli) runCreateArticle(ctx context.Context, args []string) error {
	asDraft := len(args) > 0 && args[0] == "--draft"

	c.io.Println("=== New Article ===")
	c.io.Println("")

	topics, err := c.api.ListTopics(ctx)
	if err == nil && len(topics) > 0 {
		c.io.Println("Topics:")
		for _, topic := range topics {
			c.io.Printf("  %s  %s\n", topic.ID, topic.Name)
		}
		c.io.Println("")
	}

	form := forms.NewArticleForm()

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	form.Title.Set(title)

	topicID, err := c.io.ReadInput("Topic id: ")
	if err != nil {
		return fmt.Errorf("failed to read topic: %w", err)
	}
	form.TopicID.Set(topicID)

	content, err := c.io.ReadInput("Content: ")
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}
	form.Content.Set(content)

	req, err := form.Submit()
	if err != nil {
		c.printFormErrors(form.Errors())
		return err
	}

	if asDraft {
		draft := &storage.Draft{
			ID:        uuid.New().String(),
			Title:     req.Title,
			Content:   req.Content,
			TopicID:   req.TopicID,
			UpdatedAt: time.Now(),
		}
		if err := c.drafts.SaveDraft(ctx, draft); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}
		c.io.Printf("✓ Draft %s saved locally. Publish it with 'mddctl drafts publish %s'.\n", draft.ID, draft.ID)
		return nil
	}

	if err := c.api.CreateArticle(ctx, req); err != nil {
		return err
	}

	c.io.Println("✓ Article published!")
	return nil
}
