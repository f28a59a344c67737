package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runTopics(ctx context.Context, args []string) error {
	topics, err := c.api.ListTopics(ctx)
	if err != nil {
		return err
	}

	if len(topics) == 0 {
		c.io.Println("No topics yet.")
		return nil
	}

	// Mark the topics the user already subscribes to.
	subscribed := make(map[string]bool)
	if profile, err := c.api.GetProfile(ctx); err == nil {
		for _, topic := range profile.Subscriptions {
			subscribed[topic.ID] = true
		}
	}

	for _, topic := range topics {
		marker := " "
		if subscribed[topic.ID] {
			marker = "*"
		}
		c.io.Printf("%s %s  %s\n", marker, topic.ID, topic.Name)
		if topic.Description != "" {
			c.io.Printf("      %s\n", topic.Description)
		}
	}
	c.io.Println("")
	c.io.Println("* subscribed. Use 'mddctl subscribe <topicId>' to follow a topic.")
	return nil
}

func (c *Cli) runSubscribe(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: mddctl subscribe <topicId>")
	}

	if err := c.api.Subscribe(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Subscribed!")
	return nil
}

func (c *Cli) runUnsubscribe(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: mddctl unsubscribe <topicId>")
	}

	if err := c.api.Unsubscribe(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Unsubscribed!")
	return nil
}
