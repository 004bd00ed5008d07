// cmd/octave/poll.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tamzrod/octave-reader/internal/format"
	"github.com/tamzrod/octave-reader/internal/poller"
	"github.com/tamzrod/octave-reader/internal/publish"
	"github.com/tamzrod/octave-reader/internal/status"
)

func newPollCmd(conn *connFlags) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "poll",
		Short: "Poll the configured quantities and publish them over MQTT",
		Long: `poll reads the quantities listed under meter.reads every poll.interval_ms.
A cycle is all-or-nothing: the first failing read aborts it. When a
publish.broker is configured, readings go to <prefix>/<id>/state/<quantity>
and the device health to <prefix>/<id>/status.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := conn.load(cmd)
			if err != nil {
				return err
			}

			app, cleanup, err := InitPollApp(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if once {
				res := app.Poller.PollOnce(ctx)
				printPoll(cmd, res)
				if app.Writer != nil {
					if err := app.Writer.Write(res); err != nil {
						return err
					}
				}
				return res.Err
			}

			return runPoll(ctx, app)
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Run a single cycle, print it and exit")
	return cmd
}

func printPoll(cmd *cobra.Command, res poller.PollResult) {
	out := cmd.OutOrStdout()
	if res.Err != nil {
		fmt.Fprintf(out, "%s: %v\n", res.MeterID, res.Err)
		return
	}
	for _, r := range res.Readings {
		fmt.Fprintln(out, format.Result(r.Function, r.Value, r.Code))
	}
}

func runPoll(ctx context.Context, app *PollApp) error {
	meterID := app.Plan.MeterID

	if app.MQTT != nil {
		if err := app.MQTT.Publish(app.Plan.AvailabilityTopic(), []byte("online"), 1, true); err != nil {
			log.Printf("availability publish failed (meter=%s): %v", meterID, err)
		}
		defer func() {
			if err := app.MQTT.Publish(app.Plan.AvailabilityTopic(), []byte("offline"), 1, true); err != nil {
				log.Printf("availability publish failed (meter=%s): %v", meterID, err)
			}
		}()
	}

	// ---- channel between poller and orchestrator ----
	out := make(chan poller.PollResult)

	secTicker := time.NewTicker(time.Second)
	defer secTicker.Stop()

	// poller producer
	go app.Poller.Run(ctx, out)

	log.Printf("polling started (meter=%s)", meterID)
	orchestrate(ctx, meterID, out, secTicker.C, app.Writer, app.Status)
	log.Printf("polling stopped (meter=%s)", meterID)
	return nil
}

// orchestrate owns the status snapshot. Poll results drive health and
// the last error code; the 1Hz tick drives seconds in error. Either
// writer may be nil.
func orchestrate(
	ctx context.Context,
	meterID string,
	results <-chan poller.PollResult,
	ticks <-chan time.Time,
	dataWriter publish.Writer,
	statusWriter publish.StatusWriter,
) {
	// Default snapshot state on start.
	snap := status.Snapshot{Health: status.HealthUnknown}

	// Full document on start (identity re-assert) if enabled.
	if statusWriter != nil {
		if err := statusWriter.WriteStatus(snap); err != nil {
			log.Printf("status write failed on start (meter=%s): %v", meterID, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return

		case res := <-results:
			if res.Err != nil {
				log.Printf("poll failed (meter=%s code=%d): %v", meterID, uint8(res.Code), res.Err)
			}

			// --- data delivery ---
			if dataWriter != nil {
				if err := dataWriter.Write(res); err != nil {
					log.Printf("writer error (meter=%s): %v", meterID, err)
				}
			}

			// --- status update (device-level truth) ---
			if statusWriter == nil {
				continue
			}
			if snap.Observe(res.Code) {
				if err := statusWriter.WriteStatus(snap); err != nil {
					log.Printf("status write failed (meter=%s): %v", meterID, err)
				}
			}

		case <-ticks:
			if statusWriter == nil {
				continue
			}
			// Tick 1 Hz while not OK.
			if snap.Tick() {
				if err := statusWriter.WriteStatus(snap); err != nil {
					log.Printf("status seconds tick write failed (meter=%s): %v", meterID, err)
				}
			}
		}
	}
}
