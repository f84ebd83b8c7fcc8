// Command token mints an access token for an operator, for environments
// without an identity provider in front of the API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/konveksi/payroll-backend-go/internal/config"
	"github.com/konveksi/payroll-backend-go/internal/domain/user"
	"github.com/konveksi/payroll-backend-go/internal/pkg/jwt"
)

func main() {
	userID := flag.String("user", "", "user id placed in the token")
	role := flag.String("role", string(user.RoleManager), "owner | manager | employee")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "-user is required")
		os.Exit(2)
	}
	if _, ok := user.RolePermissions[user.Role(*role)]; !ok {
		fmt.Fprintf(os.Stderr, "unknown role %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	token, expiresAt, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration).GenerateAccessToken(*userID, user.Role(*role))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating token:", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Unix(expiresAt, 0).Format(time.RFC3339))
}
