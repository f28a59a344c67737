package cli

import (
	"context"
	"fmt"

	"github.com/mddlabs/mddctl/internal/forms"
	"github.com/mddlabs/mddctl/pkg/api"
)

func (c *Cli) runArticles(ctx context.Context, args []string) error {
	sort := api.SortDateDesc
	if len(args) > 0 {
		switch args[0] {
		case "asc":
			sort = api.SortDateAsc
		case "desc":
			sort = api.SortDateDesc
		default:
			return fmt.Errorf("unknown sort order %q (want asc or desc)", args[0])
		}
	}

	articles, err := c.api.ListArticles(ctx, sort)
	if err != nil {
		return err
	}

	if len(articles) == 0 {
		c.io.Println("No articles yet. Write one with 'mddctl create-article'.")
		return nil
	}

	for _, a := range articles {
		c.io.Printf("%s  %s\n", a.CreatedAt.Format("2006-01-02"), a.Title)
		c.io.Printf("    id: %s | topic: %s | by %s\n", a.ID, a.Topic.Name, a.Author.Username)
	}
	return nil
}

func (c *Cli) runArticle(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: mddctl article <id>")
	}

	article, err := c.api.GetArticle(ctx, args[0])
	if err != nil {
		return err
	}

	c.io.Printf("=== %s ===\n", article.Title)
	c.io.Printf("%s | topic: %s | by %s\n", article.CreatedAt.Format("2006-01-02 15:04"), article.Topic.Name, article.Author.Username)
	c.io.Println("")
	c.io.Println(article.Content)
	c.io.Println("")

	if len(article.Comments) == 0 {
		c.io.Println("No comments yet.")
		return nil
	}
	c.io.Printf("Comments (%d):\n", len(article.Comments))
	for _, comment := range article.Comments {
		c.io.Printf("  %s (%s): %s\n", comment.Author.Username, comment.CreatedAt.Format("2006-01-02"), comment.Content)
	}
	return nil
}

func (c *Cli) runComment(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: mddctl comment <articleId>")
	}
	articleID := args[0]

	form := forms.NewCommentForm()
	content, err := c.io.ReadInput("Comment: ")
	if err != nil {
		return fmt.Errorf("failed to read comment: %w", err)
	}
	form.Content.Set(content)

	req, err := form.Submit()
	if err != nil {
		c.printFormErrors(form.Errors())
		return err
	}

	comment, err := c.api.CreateComment(ctx, articleID, req)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Comment %s added.\n", comment.ID)
	return nil
}
