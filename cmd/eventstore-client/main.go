package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cuemby/eventstore/pkg/client"
	"github.com/cuemby/eventstore/pkg/config"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "eventstore-client",
	Short:   "Command line client for the event store",
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("eventstore-client version %s (%s)\n", Version, Commit))

	rootCmd.PersistentFlags().String("server", "localhost:50051", "Event store server address (when unset: EVENT_STORE_HOSTNAME and EVENT_STORE_PORTNR)")

	publishCmd.Flags().String("data", "", "Event payload (raw bytes)")
	publishCmd.MarkFlagRequired("data")

	subscribeCmd.Flags().String("group", "", "Consumer group name (omit for fan-out delivery)")

	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(getActionCmd)
	rootCmd.AddCommand(subscribeCmd)
}

func newClient(cmd *cobra.Command) (*client.Client, error) {
	addr, _ := cmd.Flags().GetString("server")
	if !cmd.Flags().Changed("server") {
		cfg, err := config.FromEnv()
		if err != nil {
			return nil, err
		}
		addr = cfg.ServerAddr()
	}
	return client.NewClient(addr)
}

var publishCmd = &cobra.Command{
	Use:   "publish TOPIC ACTION",
	Short: "Publish an event to a topic",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, action := args[0], args[1]
		data, _ := cmd.Flags().GetString("data")

		c, err := newClient(cmd)
		if err != nil {
			return fmt.Errorf("failed to connect to server: %v", err)
		}
		defer c.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		eventID, err := c.Publish(ctx, topic, action, []byte(data))
		if err != nil {
			return fmt.Errorf("failed to publish: %v", err)
		}

		fmt.Printf("Published event %s to topic %s\n", eventID, topic)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get TOPIC",
	Short: "Fetch all events on a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := args[0]

		c, err := newClient(cmd)
		if err != nil {
			return fmt.Errorf("failed to connect to server: %v", err)
		}
		defer c.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		events, err := c.Get(ctx, topic)
		if err != nil {
			return fmt.Errorf("failed to get events: %v", err)
		}

		return printEvents(events)
	},
}

var getActionCmd = &cobra.Command{
	Use:   "get-action TOPIC ACTION",
	Short: "Fetch events on a topic filtered by action",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, action := args[0], args[1]

		c, err := newClient(cmd)
		if err != nil {
			return fmt.Errorf("failed to connect to server: %v", err)
		}
		defer c.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		events, err := c.GetAction(ctx, topic, action)
		if err != nil {
			return fmt.Errorf("failed to get events: %v", err)
		}

		return printEvents(events)
	},
}

var subscribeCmd = &cobra.Command{
	Use:   "subscribe TOPIC",
	Short: "Subscribe to a topic and print events as they arrive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := args[0]
		group, _ := cmd.Flags().GetString("group")

		c, err := newClient(cmd)
		if err != nil {
			return fmt.Errorf("failed to connect to server: %v", err)
		}
		defer c.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var groupPtr *string
		if group != "" {
			groupPtr = &group
		}

		_, err = c.Subscribe(ctx, topic, groupPtr, func(n client.Notification) {
			fmt.Printf("[%s] %s action=%s data=%s\n", n.EventID, topic, n.Action, n.Data)
		})
		if err != nil {
			return fmt.Errorf("failed to subscribe: %v", err)
		}

		fmt.Printf("Subscribed to %s, waiting for events (ctrl-c to stop)...\n", topic)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh

		return nil
	},
}

func printEvents(events []client.Event) error {
	if len(events) == 0 {
		fmt.Println("No events found")
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("failed to encode event: %v", err)
		}
	}
	return nil
}
