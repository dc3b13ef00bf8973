// Command tokengen mints a bearer token for a game host.
//
//	tokengen -host survival-1 [-config config.yaml]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"game-economy/config"
	"game-economy/internal/service"
)

func main() {
	host := flag.String("host", "", "game host identifier (token subject)")
	configPath := flag.String("config", "", "config file (defaults to ./config.yaml)")
	expiry := flag.Duration("expiry", 0, "token lifetime; overrides jwt.expiry")
	flag.Parse()

	if *host == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "jwt.secret (ECO_JWT_SECRET) must be set")
		os.Exit(1)
	}

	lifetime := cfg.JWT.Expiry
	if *expiry > 0 {
		lifetime = *expiry
	}

	token, expiresAt, err := service.NewJWTTokenService(cfg.JWT.Secret, lifetime, cfg.JWT.Issuer).Generate(*host)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", expiresAt.Format(time.RFC3339))
}
