package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tair/stockwatch/internal/inventory/reorder"
	"github.com/tair/stockwatch/internal/inventory/stock"
	"github.com/tair/stockwatch/kafka"
)

func alertsCmd() *cobra.Command {
	var groupID string

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Follow the reorder alert stream",
		Long: `Consume reorder alerts published by the stockwatch service whenever a
write leaves an item in WARNING or URGENT state, printing each one until
interrupted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(cfg.Kafka.Brokers) == 0 {
				return errors.New("no kafka brokers configured, set KAFKA_BROKERS")
			}
			if groupID == "" {
				groupID = cfg.Kafka.GroupID
			}

			consumer, err := kafka.NewConsumer(cfg.Kafka.Brokers, groupID, []string{cfg.Kafka.Topic})
			if err != nil {
				return err
			}
			defer consumer.Close()

			out := cmd.OutOrStdout()
			consumer.RegisterHandler(kafka.EventTypeReorderAlert, func(_ context.Context, event kafka.ReorderAlertEvent) error {
				renderAlert(out, event)
				return nil
			})

			if err := consumer.Start(ctx); err != nil {
				return err
			}

			fmt.Fprintln(out, mutedStyle.Render("Listening on "+cfg.Kafka.Topic+", press Ctrl+C to stop."))
			<-ctx.Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&groupID, "group", "", "consumer group id (defaults to kafka.group_id)")

	return cmd
}

func renderAlert(out io.Writer, event kafka.ReorderAlertEvent) {
	status := stock.Status(event.Status)
	fmt.Fprintf(out, "%s %s %s: %s %s left, %s\n",
		mutedStyle.Render(event.Timestamp.Format("15:04:05")),
		statusStyles[status].Render(event.Status),
		event.ItemName,
		reorder.FormatQuantity(event.CurrentStock), event.Unit,
		event.Recommendation,
	)
	if event.ReorderURL != "" {
		fmt.Fprintln(out, "  "+mutedStyle.Render(event.ReorderURL))
	}
}
