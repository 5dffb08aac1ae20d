// Mr_Evra | 2025
// main.go

// Command keygen writes a fresh ES256 key pair for signing access tokens.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mr-evra/portfolio-api/internal/auth"
)

func main() {
	privatePath := flag.String("private", "keys/es256-private.pem", "output path for the private key")
	publicPath := flag.String("public", "keys/es256-public.pem", "output path for the public key")
	flag.Parse()

	if err := auth.GenerateKeyPair(*privatePath, *publicPath); err != nil {
		fmt.Fprintf(os.Stderr, "keygen: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s and %s\n", *privatePath, *publicPath)
}
