package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var once sync.Once

// Init configures the global zerolog logger. Development gets a console
// writer, everything else emits JSON lines on stdout.
func Init(environment string) {
	once.Do(func() {
		var out io.Writer = os.Stdout
		if environment == "development" {
			out = zerolog.ConsoleWriter{Out: os.Stdout}
		}
		log.Logger = zerolog.New(out).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	})
}
