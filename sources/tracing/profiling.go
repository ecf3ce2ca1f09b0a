package tracing

import "time"

// ProfilePoint returns a deferred closure that logs the elapsed time of the
// surrounding operation.
func ProfilePoint(log *Logger, msg, opname string, fields ...any) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		log.D(msg, append(fields, "op", opname, "elapsed_ms", elapsed.Milliseconds())...)
	}
}
