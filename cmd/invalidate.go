package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-TableAvailability/internal/config"
	"github.com/m04kA/SMC-TableAvailability/internal/infra/broker"
	invalidateCacheUC "github.com/m04kA/SMC-TableAvailability/internal/usecase/invalidate_cache"
)

func newInvalidateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "invalidate <event>",
		Short: "Publish a cache invalidation event to the broker queue",
		Long: "Publishes an invalidation event (reservation_created, closure_saved, ...) " +
			"to the queue consumed by every running serve instance.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event := strings.ToLower(strings.TrimSpace(args[0]))
			if !invalidateCacheUC.IsKnownEvent(event) {
				return fmt.Errorf("%w: %q", invalidateCacheUC.ErrUnknownEvent, args[0])
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			publisher := broker.NewPublisher(cfg.Broker.URL, cfg.Broker.Queue)
			defer publisher.Close()

			msg := broker.NewInvalidationEvent(event, invalidateCacheUC.SourceCLI, time.Now())
			if err := publisher.Publish(cmd.Context(), msg); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "published %s (%s) to %s\n", event, msg.ID, cfg.Broker.Queue)
			return err
		},
	}
}
