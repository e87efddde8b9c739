//go:build ignore

// This script generates the shared JWT secret and API keys for the pricing
// service. Run with: go run scripts/generate_keys.go [-keys 2]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strings"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func main() {
	count := flag.Int("keys", 1, "number of API keys to generate")
	flag.Parse()
	if *count < 1 {
		fmt.Fprintln(os.Stderr, "-keys must be at least 1")
		os.Exit(2)
	}

	// HS256 secret shared with the auth platform (32 bytes = 256 bits)
	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating JWT secret: %v\n", err)
		os.Exit(1)
	}

	apiKeys := make([]string, 0, *count)
	for range *count {
		key, err := generateSecureKey(24)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating API key: %v\n", err)
			os.Exit(1)
		}
		apiKeys = append(apiKeys, key)
	}

	fmt.Println("# Add these to your .env file")
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("JWT_SECRET=%s\n", jwtSecret)
	fmt.Printf("API_KEYS=%s\n", strings.Join(apiKeys, ","))
	fmt.Println()
	fmt.Println("# Never commit these values. Use different keys per environment.")
}
