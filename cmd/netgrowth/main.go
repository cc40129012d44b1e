// Command netgrowth grows random networks with the preferential-attachment
// models and reports the fitted power laws of their degree statistics.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
