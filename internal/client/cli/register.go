package cli

import (
	"context"
	"fmt"

	"github.com/mddlabs/mddctl/internal/forms"
)

func (c *Cli) runRegister(ctx context.Context, args []string) error {
	c.io.Println("=== Registration ===")
	c.io.Println("")

	form := forms.NewRegisterForm()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	form.Email.Set(email)

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	form.Username.Set(username)

	password, err := c.io.ReadPassword("Password (min 8 chars, mixed case, digit, special): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	form.Password.Set(password)

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	req, err := form.Submit()
	if err != nil {
		c.printFormErrors(form.Errors())
		return err
	}

	c.io.Println("")
	c.io.Println("Registering...")

	if err := c.auth.Register(ctx, req); err != nil {
		return err
	}

	c.io.Println("")
	c.io.Println("✓ Registration successful!")
	c.io.Println("Run 'mddctl login' to log in.")
	return nil
}
