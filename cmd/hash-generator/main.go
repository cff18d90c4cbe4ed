// Command hash-generator prints bcrypt hashes for the passwords given as
// arguments. Useful for seeding test fixtures and local databases.
package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/fintrack/fintrack-api/internal/service/auth"
)

func main() {
	passwords := os.Args[1:]
	if len(passwords) == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator <password> [password ...]")
		os.Exit(2)
	}

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error hashing %q: %v\n", password, err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", password, hash)
	}
}
