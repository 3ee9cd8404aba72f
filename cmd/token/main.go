// Command token issues a bearer token for an administrative operator.
// It is used to bootstrap access to the admin API.
//
// Usage:
//
//	token --subject=ops@example.org [--role=admin] [--ttl=12h]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/heartmarshall/hadith-backend/internal/auth"
	"github.com/heartmarshall/hadith-backend/internal/config"
)

func main() {
	subject := flag.String("subject", "", "operator the token is issued to")
	role := flag.String("role", auth.RoleAdmin, "role claim")
	ttl := flag.Duration("ttl", 0, "token lifetime (default from config)")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "Usage: token --subject=ops@example.org [--role=admin] [--ttl=12h]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lifetime := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	tok, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime).GenerateAccessToken(*subject, *role)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(tok)
}
