package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/maxwell903/maxandjacob-sub000/internal/grocery"
	"github.com/maxwell903/maxandjacob-sub000/internal/refresh"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		filter   string
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch <list-id>",
		Short: "Re-reconcile a list whenever it or the fridge changes",
		Long: `Poll the backend and print the reconciled list each time the list or the
fridge changes. Runs until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := parseID("list", args[0])
			if err != nil {
				return err
			}
			f, err := grocery.ParseViewFilter(filter)
			if err != nil {
				return err
			}
			if interval <= 0 {
				interval = a.cfg.Watch.Interval
			}

			r := refresh.New(a.client, refresh.Config{
				ListID:   listID,
				Interval: interval,
				Filter:   f,
			}, a.logger)
			_, updates := r.Subscribe()

			a.logger.Info("watching list", "list_id", listID, "interval", interval)
			r.Start(cmd.Context())
			defer r.Stop()

			w := cmd.OutOrStdout()
			for res := range updates {
				if a.output == "json" {
					if err := printJSON(w, res); err != nil {
						return err
					}
					continue
				}
				title := fmt.Sprintf("%s  %s", res.ListName, res.UpdatedAt.Format(time.Kitchen))
				printBuckets(w, title, res.Buckets, f)
				fmt.Fprintln(w)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "inStock", "inStock, needed or all")
	cmd.Flags().DurationVar(&interval, "interval", 0, "poll interval (default from config)")
	return cmd
}
