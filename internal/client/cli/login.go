package cli

import (
	"context"
	"fmt"

	"github.com/mddlabs/mddctl/internal/forms"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	c.io.Println("=== Login ===")
	c.io.Println("")

	form := forms.NewLoginForm()

	usernameOrEmail, err := c.io.ReadInput("Username or email: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	form.UsernameOrEmail.Set(usernameOrEmail)

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	form.Password.Set(password)

	req, err := form.Submit()
	if err != nil {
		c.printFormErrors(form.Errors())
		return err
	}

	c.io.Println("")
	c.io.Println("Authenticating...")

	if err := c.auth.Login(ctx, req); err != nil {
		return err
	}

	c.io.Println("")
	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as: %s\n", c.sessions.Read().Username)
	return nil
}
