package editor

import "time"

// shutdownJoinTimeout bounds how long Shutdown waits for the async
// worker to join, per spec §4.10's "~2 s" figure.
const shutdownJoinTimeout = 2 * time.Second

// readKeyTimeout is the main loop's read_key bound from spec §4.11: long
// enough to avoid busy-looping, short enough that queued background
// results still reach the status bar promptly with no key pressed.
const readKeyTimeout = 100 * time.Millisecond
