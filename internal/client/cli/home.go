package cli

import "context"

func (c *Cli) runHome(ctx context.Context, args []string) error {
	c.io.Println("=== MDD ===")
	c.io.Println("")
	c.io.Println("A place to read, write and discuss articles about development.")
	c.io.Println("")
	snap := c.sessions.Read()
	if snap.LoggedIn {
		c.io.Printf("Logged in as %s. Try 'mddctl articles'.\n", snap.Username)
		return nil
	}
	c.io.Println("Run 'mddctl login' or 'mddctl register' to get started.")
	return nil
}
