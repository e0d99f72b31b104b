package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	findSlotsHandler "github.com/m04kA/SMC-TableAvailability/internal/api/handlers/find_slots"
	findSlotsUC "github.com/m04kA/SMC-TableAvailability/internal/usecase/find_slots"
	"github.com/m04kA/SMC-TableAvailability/pkg/logger"
)

func newSlotsCmd(configPath *string) *cobra.Command {
	var (
		req     findSlotsUC.Request
		roomID  int64
		verbose bool
	)

	cmd := &cobra.Command{
		Use:     "slots",
		Short:   "Print availability for a date as JSON",
		Example: "  table-availability slots --date 2025-03-10 --party 4 --room 2",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.NewNop()
			if verbose {
				log = nil
			}

			a, err := newApp(cmd.Context(), *configPath, log, false)
			if err != nil {
				return err
			}
			defer a.close()

			if cmd.Flags().Changed("room") {
				req.RoomID = &roomID
			}

			resp, err := a.findSlots().Execute(cmd.Context(), &req)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(findSlotsHandler.FromUseCaseResponse(resp), "", "  ")
			if err != nil {
				return fmt.Errorf("encode response: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	cmd.Flags().StringVar(&req.Date, "date", "", "date in YYYY-MM-DD")
	cmd.Flags().IntVar(&req.Party, "party", 2, "party size")
	cmd.Flags().Int64Var(&roomID, "room", 0, "room id filter")
	cmd.Flags().StringVar(&req.Meal, "meal", "", "meal key, echoed back")
	cmd.Flags().StringVar(&req.EventID, "event-id", "", "event id, echoed back")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "write logs according to config")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
