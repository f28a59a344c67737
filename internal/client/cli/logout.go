package cli

import "context"

func (c *Cli) runLogout(ctx context.Context, args []string) error {
	c.io.Println("=== Logout ===")

	// On failure the gateway has already reconciled the session via a probe.
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}

	c.io.Println("✓ Logout successful!")
	return nil
}
