// README: Demo CLI; drives a planner session against a running API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"tripweaver/internal/planner"
)

func main() {
	_ = godotenv.Load()

	baseURL := flag.String("base-url", envOrDefault("TRIPWEAVER_API_BASE_URL", "http://localhost:8080"), "API base URL")
	destination := flag.String("destination", "Kyoto, Japan", "destination city")
	days := flag.Int("days", 3, "trip length in days")
	budget := flag.Float64("budget", 900, "total budget")
	currency := flag.String("currency", "USD", "currency code")
	idToken := flag.String("id-token", os.Getenv("TRIPWEAVER_ID_TOKEN"), "Firebase ID token; enables saving")
	uid := flag.String("uid", os.Getenv("TRIPWEAVER_UID"), "user id matching the token")
	save := flag.Bool("save", false, "save the generated trip to the dashboard")
	flag.Parse()

	client := planner.NewClient(*baseURL)
	session := planner.NewSession(client, client)
	session.SetForm(planner.Form{
		Destination: *destination,
		Days:        *days,
		Budget:      *budget,
		Currency:    *currency,
	})
	if *idToken != "" {
		session.SignIn(planner.User{ID: *uid, IDToken: *idToken})
	}

	ctx := context.Background()

	progressCtx, stopProgress := context.WithCancel(ctx)
	stages := planner.RunProgress(progressCtx, 0)
	go func() {
		for s := range stages {
			fmt.Printf("  [%3d%%] %s\n", s.Percent, s.Label)
		}
	}()

	result, err := session.Generate(ctx)
	stopProgress()
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	fmt.Printf("\n%s — %d days, %s %.0f\n\n", result.Destination, result.Days, result.Currency, result.Budget)
	fmt.Println(result.Overview)
	for _, p := range result.DayPlans {
		fmt.Printf("\nDay %d: %s\n", p.Day, p.Title)
		for _, a := range p.Activities {
			fmt.Printf("  - %s\n", a)
		}
	}
	fmt.Println()
	for _, w := range result.Weather {
		fmt.Printf("%s %.0f° %s  ", w.Day, w.Temp, w.Condition)
	}
	fmt.Println()

	if *save {
		if err := session.Save(ctx); err != nil {
			log.Fatalf("save: %v", err)
		}
		fmt.Println("trip saved to dashboard")
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
