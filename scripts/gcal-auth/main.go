// scripts/gcal-auth/main.go
//
// Run this once locally to authorize read-only Google Calendar access for
// the calendar import route. The token is written next to the credentials
// file, where gcalendar.NewClientFromCredentialsFile looks for it.
//
// Usage:
//   go run scripts/gcal-auth/main.go [google-credentials.json]

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"gantt-timeline/pkg/gcalendar"
	"gantt-timeline/pkg/log"
)

func main() {
	ctx := context.Background()
	logger := log.Init(log.ZapConfig{Level: "info", Mode: "debug", Encoding: "console", ColorEnabled: true})

	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarReadonlyScope)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse credentials: %v (is %q an OAuth Desktop App file?)", err, credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("Step 1: open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		logger.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		logger.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}

	tokenPath := filepath.Join(filepath.Dir(credsPath), "token.json")
	if err := writeToken(tokenPath, tok); err != nil {
		logger.Fatalf(ctx, "Failed to write %s: %v", tokenPath, err)
	}
	logger.Infof(ctx, "Token saved to %s", tokenPath)

	// Verify the token by listing the coming week.
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, credsPath)
	if err != nil {
		logger.Fatalf(ctx, "Token saved but client could not be built: %v", err)
	}
	now := time.Now()
	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin:    now,
		TimeMax:    now.AddDate(0, 0, 7),
		MaxResults: 10,
	})
	if err != nil {
		logger.Fatalf(ctx, "Token saved but listing events failed: %v", err)
	}
	logger.Infof(ctx, "Calendar access verified: %d events in the next 7 days", len(events))
}

func writeToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}
