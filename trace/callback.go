package trace

import (
	"log"
	"os"
)

// A Callback is invoked with the address of a completed request.
type Callback func(addr uint64)

// ReadCallback returns a callback for simulations without a frontend. It
// logs the returned address when logRequests is set and does nothing
// otherwise. A nil logger writes to stdout.
func ReadCallback(logger *log.Logger, logRequests bool) Callback {
	return requestCallback(logger, logRequests, "Read")
}

// WriteCallback is the write counterpart of ReadCallback.
func WriteCallback(logger *log.Logger, logRequests bool) Callback {
	return requestCallback(logger, logRequests, "Write")
}

func requestCallback(
	logger *log.Logger,
	logRequests bool,
	kind string,
) Callback {
	if !logRequests {
		return func(uint64) {}
	}

	if logger == nil {
		logger = log.New(os.Stdout, "", 0)
	}

	return func(addr uint64) {
		logger.Printf("%s Request with address = %d is returned", kind, addr)
	}
}
