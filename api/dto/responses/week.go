// ABOUTME: Response DTOs for week-related API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// WeekResponse represents a week in API responses
type WeekResponse struct {
	Number   int       `json:"number" doc:"Week number within its week-numbering year" example:"31"`
	Year     int       `json:"year" doc:"Week-numbering year" example:"2023"`
	Start    time.Time `json:"start" doc:"First instant of the week (UTC midnight)"`
	End      time.Time `json:"end" doc:"Last millisecond of the week"`
	Label    string    `json:"label" doc:"Week rendered with the requested format token" example:"31-2023 (2023-07-31 ~ 2023-08-06)"`
	Policy   string    `json:"policy" doc:"Numbering policy used" example:"Monday/first-four-day-week"`
	Previous string    `json:"previous,omitempty" doc:"Year-number label of the preceding week" example:"2023-30"`
	Next     string    `json:"next,omitempty" doc:"Year-number label of the following week" example:"2023-32"`
}

// YearResponse lists every week of a year
type YearResponse struct {
	Year        int            `json:"year" doc:"Week-numbering year"`
	WeeksInYear int            `json:"weeks_in_year" doc:"Number of weeks, 52 or 53"`
	Policy      string         `json:"policy" doc:"Numbering policy used"`
	Weeks       []WeekResponse `json:"weeks" doc:"Weeks in ascending order"`
}

// WeekNumberResponse is the bare week number of a date
type WeekNumberResponse struct {
	Date   time.Time `json:"date" doc:"Date the number was computed for, in UTC"`
	Number int       `json:"number" doc:"Week number of the date within its calendar year"`
	Policy string    `json:"policy" doc:"Numbering policy used"`
}
