package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/foodgram/storefront/internal/config"
	"github.com/foodgram/storefront/internal/foodapi"
	"github.com/foodgram/storefront/internal/models"
)

func main() {
	registerCmd := flag.NewFlagSet("register", flag.ExitOnError)
	name := registerCmd.String("name", "", "Full name of the new account")
	email := registerCmd.String("email", "", "Email (must end with @gmail.com or @nuclesteq.com)")
	phone := registerCmd.String("phone", "", "10-digit phone number")
	password := registerCmd.String("password", "", "Password for the new account")
	owner := registerCmd.Bool("owner", false, "Register as a restaurant owner instead of a customer")

	if len(os.Args) < 2 {
		fmt.Println("expected 'register' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "register":
		registerCmd.Parse(os.Args[2:])
		if *name == "" || *email == "" || *phone == "" || *password == "" {
			fmt.Println("name, email, phone and password are required")
			registerCmd.PrintDefaults()
			os.Exit(1)
		}
		role := models.RoleUser
		if *owner {
			role = models.RoleOwner
		}
		registerAccount(*name, *email, *phone, *password, role)
	default:
		fmt.Println("expected 'register' subcommand")
		os.Exit(1)
	}
}

// registerAccount creates an account directly against the user service,
// handy for seeding an owner before the storefront is up.
func registerAccount(name, email, phone, password, role string) {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	api := foodapi.NewClient(cfg.Services, cfg.RequestTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err = api.Register(ctx, foodapi.RegisterRequest{
		Name:     name,
		Email:    email,
		PhoneNo:  phone,
		Password: password,
		Role:     role,
	})
	if err != nil {
		log.Fatalf("Failed to register account: %v", err)
	}

	fmt.Printf("Account '%s' (%s) created successfully.\n", email, role)
}
