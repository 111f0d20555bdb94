package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/godu/internal/du"
)

// progressInterval is the minimum delay between progress line repaints.
const progressInterval = 200 * time.Millisecond

// logger provides warning and conditional debug output on stderr.
type logger struct {
	debug bool
}

// debugf prints debug output if enabled.
func (l logger) debugf(format string, args ...any) {
	if l.debug {
		fmt.Fprintf(os.Stderr, "[debug]: "+format+"\n", args...)
	}
}

// warnf prints a warning for a skipped entry.
func (l logger) warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "godu: "+format+"\n", args...)
}

func logic(options du.Options) error {
	log := logger{debug: options.Debug}

	enableProgress := !options.Debug && isatty.IsTerminal(os.Stderr.Fd())

	// In-place status line on stderr, repainted inline from the synchronous
	// walk. Hide the cursor while it updates; restore on exit.
	var progress du.ProgressFunc

	if enableProgress {
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		last := time.Now()
		progress = func(entries, bytes int64) {
			if time.Since(last) < progressInterval {
				return
			}

			last = time.Now()

			fmt.Fprintf(os.Stderr, "\r\033[2KScanning… %d entries, %s\r",
				entries, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
		}
	}

	start := time.Now()

	err := du.Run(options, os.Stdout, log.warnf, progress)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	log.debugf("finished in %v", time.Since(start))

	return err
}
