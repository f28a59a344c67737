package cli

import (
	"context"
	"fmt"

	"github.com/mddlabs/mddctl/internal/forms"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "update" {
		return c.updateProfile(ctx)
	}

	user, err := c.api.GetProfile(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Profile ===")
	c.io.Printf("Username: %s\n", user.Username)
	c.io.Printf("Email:    %s\n", user.Email)
	c.io.Println("")

	if len(user.Subscriptions) == 0 {
		c.io.Println("No subscriptions. Browse topics with 'mddctl topics'.")
		return nil
	}
	c.io.Println("Subscriptions:")
	for _, topic := range user.Subscriptions {
		c.io.Printf("  %s  %s\n", topic.ID, topic.Name)
	}
	return nil
}

// updateProfile sends only the fields the user filled in; empty answers
// leave the server-side value untouched.
func (c *Cli) updateProfile(ctx context.Context) error {
	c.io.Println("=== Update Profile ===")
	c.io.Println("Leave a field empty to keep its current value.")
	c.io.Println("")

	form := forms.NewProfileForm()

	username, err := c.io.ReadInput("New username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	form.Username.Set(username)

	email, err := c.io.ReadInput("New email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	form.Email.Set(email)

	password, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	form.Password.Set(password)

	req, err := form.Submit()
	if err != nil {
		c.printFormErrors(form.Errors())
		return err
	}

	if req.Username == "" && req.Email == "" && req.Password == "" {
		c.io.Println("Nothing to update.")
		return nil
	}

	if err := c.api.UpdateProfile(ctx, req); err != nil {
		return err
	}

	c.io.Println("✓ Profile updated!")
	return nil
}
