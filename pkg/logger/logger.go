// Package logger configura el logging estructurado de la aplicación:
// consola legible en desarrollo, una línea JSON por evento en los
// demás entornos.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options parámetros de arranque del logger.
type Options struct {
	Env    string    // "development" activa la salida de consola
	Level  string    // nivel mínimo (trace..error); vacío o inválido cae a info
	Writer io.Writer // destino de salida; nil escribe a stdout
}

// Logger expone la API de zerolog ya configurada para la aplicación.
type Logger struct {
	zerolog.Logger
}

// New construye el logger raíz y redirige el logger global de zerolog,
// así las librerías que loguean por esa vía comparten formato y nivel.
func New(opts Options) *Logger {
	out := opts.Writer
	if out == nil {
		out = os.Stdout
	}
	if opts.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zl := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{Logger: zl}
}
