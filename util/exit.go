package util

import (
	"log"
	"os"
	"runtime"

	"github.com/tebeka/atexit"
)

// AbruptExitCode is the status the process exits with on AbruptExit.
const AbruptExitCode = -1

// ErrorLogger receives the messages printed before an abrupt exit.
var ErrorLogger = log.New(os.Stderr, "", 0)

// exitFunc runs the atexit handlers and terminates the process.
var exitFunc = atexit.Exit

// AbruptExit reports the file and line of its caller and terminates the
// process. Handlers registered with atexit, such as data recorder flushes,
// run before the process exits.
func AbruptExit() {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "???", 0
	}

	AbruptExitAt(file, line)
}

// AbruptExitAt is AbruptExit with an explicit location.
func AbruptExitAt(file string, line int) {
	ErrorLogger.Printf("Exiting Abruptly - %s:%d", file, line)
	exitFunc(AbruptExitCode)
}
