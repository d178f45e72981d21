// Command devtoken mints a bearer token for local development.
//
//	go run ./cmd/devtoken -sub u1 -name Ada -email ada@example.com
//
// The token is signed with JWT_SECRET (read from the environment or .env) and
// printed to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ideashare/backend/internal/auth"
	"github.com/ideashare/backend/internal/domain"
)

func main() {
	sub := flag.String("sub", "", "principal ID (required)")
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "contact email")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "devtoken: read .env:", err)
	}

	if *sub == "" {
		fmt.Fprintln(os.Stderr, "devtoken: -sub is required")
		flag.Usage()
		os.Exit(2)
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "devtoken: JWT_SECRET not set")
		os.Exit(1)
	}

	token, err := auth.Issue(secret, domain.Principal{ID: *sub, DisplayName: *name, Contact: *email}, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "devtoken:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
