package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger escribe los logs estructurados del panel. Expone solo el subconjunto
// de zerolog que la aplicación usa; se inyecta, nunca se accede global.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según el entorno: consola legible en development,
// JSON en el resto. level acepta los niveles de zerolog (debug, info, warn,
// error...); un valor vacío o desconocido cae en info.
func New(env, level string) *Logger {
	zl := zerolog.New(os.Stdout)
	if env == "development" {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zl = zl.Level(lvl).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// Debug, Info, Warn, Error y Fatal delegan en zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
