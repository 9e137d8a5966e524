package locator

import (
	"fmt"
	"strings"
)

// queryFields are the telemetry columns requested from the diagnostic
// tool, in the order consumers expect to read them back.
var queryFields = []string{
	"name",
	"memory.total",
	"memory.used",
	"memory.free",
	"utilization.gpu",
	"utilization.memory",
}

// QueryArgs formats the argument string that makes the diagnostic tool
// poll every intervalMs milliseconds and emit the telemetry fields as
// comma-separated values with no header row and no units.
//
// The interval is interpolated verbatim; validating it is the caller's
// responsibility.
func QueryArgs(intervalMs int) string {
	return fmt.Sprintf("-lms %d --query-gpu=%s --format=csv,noheader,nounits",
		intervalMs, strings.Join(queryFields, ","))
}
