// Package logger builds the process-wide zap logger.
//
// Level "debug" selects zap's development preset; any other level selects the
// production preset at that level. Format "console" gives coloured, stack-free
// output for terminals, anything else JSON with level/time/message keys.
//
// Two helpers attach correlation fields:
//
//	l := logger.WithRayID(log, c)                        // HTTP handlers
//	l := logger.WithCycle(log, parkID, "full", cycleID)  // sync cycles
package logger
