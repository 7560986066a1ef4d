package log

import (
	"io"
	"log"
	"os"
)

const traceEnvVar = "HIRANAGA_TRACE"

var (
	Trace   *log.Logger
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
)

func init() {
	InitLog()
}

// InitLog sets up the package loggers. Trace output is discarded unless
// the HIRANAGA_TRACE environment variable is set.
func InitLog() {
	traceHandle := io.Discard
	if os.Getenv(traceEnvVar) != "" {
		traceHandle = os.Stdout
	}

	Trace = log.New(traceHandle, "TRACE: ", log.Ldate|log.Ltime|log.Lshortfile)
	Info = log.New(os.Stdout, "", 0)
	Warning = log.New(os.Stdout, "WARNING: ", 0)
	Error = log.New(os.Stderr, "ERROR: ", 0)
}
