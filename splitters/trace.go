package splitters

import "log"

// Trace enables verbose logging of splitter decisions (case transitions,
// recursive segmentation choices) to the standard logger. It costs one
// branch per call site when left false; set it from a CLI flag or test
// setup, never from library code.
var Trace = false

func trace(format string, args ...any) {
	if !Trace {
		return
	}
	log.Printf("ronin: "+format, args...)
}
