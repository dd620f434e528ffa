// ABOUTME: Shared helpers for weekcal commands
// ABOUTME: Builds the library client from flags and parses positional arguments

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"weekcal-api/core/domain"
	weeks "weekcal-api/weekslib"
)

var validFormats = map[string]bool{
	domain.FormatFull:          true,
	domain.FormatShortPadded:   true,
	domain.FormatShort:         true,
	domain.FormatYearFirst:     true,
	domain.FormatYearFirstLong: true,
}

func withClient(run func(*weeks.Client) error) error {
	if !validFormats[formatFlag] {
		return fmt.Errorf("invalid --format %q (expected F, S, s, i or I)", formatFlag)
	}

	opts := []weeks.Option{weeks.WithQuietMode()}
	if strings.TrimSpace(localeFlag) != "" {
		opts = append(opts, weeks.WithLocale(localeFlag))
	}
	opts = append(opts, weeks.WithPolicyNames(firstDayFlag, ruleFlag))

	switch cacheFlag {
	case "", "memory":
	case "sqlite":
		opts = append(opts, weeks.WithCacheOption(weeks.CacheOption{
			Type:     weeks.CacheTypeSQLite,
			FilePath: cachePathFlag,
		}))
	default:
		return fmt.Errorf("invalid --cache %q (expected memory or sqlite)", cacheFlag)
	}

	client, err := weeks.NewClient(opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	return run(client)
}

func parseIntArg(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}
