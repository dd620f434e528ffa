// ABOUTME: Basic example showing week lookups with the weeks library
// ABOUTME: Demonstrates minimal configuration and common use cases

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	weeks "weekcal-api/weekslib"
)

func main() {
	ctx := context.Background()

	// Example 1: Create a client with default configuration
	client, err := weeks.NewClient()
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	// Example 2: Resolve a week by number
	fmt.Println("=== Week 31 of 2023 ===")
	w, err := client.Week(ctx, 2023, 31)
	if err != nil {
		log.Printf("Error resolving week: %v\n", err)
	} else {
		fmt.Println(w.Format("S"))
	}

	// Example 3: Find the week a date falls in
	fmt.Println("\n=== Week of 2021-01-01 ===")
	w, _ = client.WeekOfDate(ctx, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	fmt.Println(w.Format("I"))

	// Example 4: US numbering with a SQLite cache
	fmt.Println("\n=== US weeks of 2024 ===")
	us, err := weeks.NewClient(
		weeks.WithLocale("en-US"),
		weeks.WithCacheOption(weeks.CacheOption{Type: weeks.CacheTypeSQLite, FilePath: "example_cache.db"}),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer us.Close()

	cal, err := us.Year(ctx, 2024)
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range cal.Weeks[:3] {
		fmt.Println(w.Format("S"))
	}
	fmt.Printf("... %d weeks under %s\n", cal.Len(), cal.Policy)

	// Example 5: Out of range weeks are reported, not clamped
	if _, err := client.Week(ctx, 2023, 53); weeks.IsOutOfRangeError(err) {
		fmt.Println("\n2023 has no week 53:", err)
	}
}
