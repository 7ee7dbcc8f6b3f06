// Command fedpro-client is a small Federate Protocol client for poking at an
// RTI: it connects, prints the callbacks it receives and disconnects.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/tebeka/atexit"
)

func main() {
	if dotenvErr := godotenv.Load(); dotenvErr != nil && !os.IsNotExist(dotenvErr) {
		fmt.Fprintf(os.Stderr, "Failed to load .env file! %s\n", dotenvErr.Error())
	}

	if err := newRootCmd().Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
