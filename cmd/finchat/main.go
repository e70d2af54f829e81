// finchat - command line client for the financial assistant
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
