package worker

import (
	"context"
	"time"

	"github.com/dwnGnL/paymentService/pkg/pretty"
)

// Job convert function to param
type Job func(ctx context.Context) error

// Start runs job right away and then every dur until ctx is done. A failing
// run is logged and does not stop the schedule.
func Start(ctx context.Context, name string, job Job, dur time.Duration) {
	ticker := time.NewTicker(dur)
	defer ticker.Stop()
	for {
		if err := job(ctx); err != nil {
			pretty.LoglnWarn("worker", name, "failed:", err)
		}
		select {
		case <-ctx.Done():
			pretty.Logln("received exit worker signal:", name)
			return
		case <-ticker.C:
		}
	}
}
