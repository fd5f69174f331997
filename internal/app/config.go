package app

import (
	"io"

	"github.com/rs/zerolog"

	"wilsonci/internal/domain"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Confidence  float64     // confidence level in (0,1), shared by every row
	Digits      int         // decimal places in the table
	Unit        domain.Unit // percent or proportion
	SkipInvalid bool        // drop malformed items instead of aborting

	Out    io.Writer      // table destination, e.g. os.Stdout
	Logger zerolog.Logger // optional; zero value discards
}
