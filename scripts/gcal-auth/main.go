// scripts/gcal-auth/main.go
//
// Run this once locally to authorize read-only Google Calendar access for
// cmd/calsync and write the OAuth token.
//
// Usage:
//   go run ./scripts/gcal-auth [-credentials google-credentials.json] [-token token.json]
//
// Paths default to google_calendar.credentials_path and
// google_calendar.token_path from the config file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"

	"workspace-assistant/config"
	"workspace-assistant/pkg/gcalendar"
)

func main() {
	credsPath := flag.String("credentials", "", "OAuth Desktop App credentials file")
	tokenPath := flag.String("token", "", "where to write the token")
	flag.Parse()

	if cfg, err := config.Load(); err == nil {
		if *credsPath == "" {
			*credsPath = cfg.GoogleCalendar.CredentialsPath
		}
		if *tokenPath == "" {
			*tokenPath = cfg.GoogleCalendar.TokenPath
		}
	}
	if *credsPath == "" {
		*credsPath = "google-credentials.json"
	}
	if *tokenPath == "" {
		*tokenPath = "token.json"
	}

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	oauthConfig, err := gcalendar.InstalledAppConfig(data)
	if err != nil {
		log.Fatalf("%v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	authURL := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in with your Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	if err := gcalendar.SaveToken(*tokenPath, tok); err != nil {
		log.Fatal(err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", *tokenPath)
	fmt.Println("Import events with:")
	fmt.Println("  go run ./cmd/calsync")
}
