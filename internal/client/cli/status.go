package cli

import "context"

func (c *Cli) runStatus(ctx context.Context, args []string) error {
	c.io.Println("=== Session Status ===")
	c.io.Println("")

	// The probe reconciles the store with the server before printing.
	if !c.auth.Probe(ctx) {
		c.io.Println("Status: Not logged in")
		c.io.Println("")
		c.io.Println("Run 'mddctl login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Logged in")
	c.io.Printf("User: %s\n", c.sessions.Read().Username)
	return nil
}
