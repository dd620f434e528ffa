// ABOUTME: Mappers for converting between domain weeks and API DTOs
// ABOUTME: Keeps label formatting and policy naming out of the handlers

package mappers

import (
	"weekcal-api/api/dto/responses"
	"weekcal-api/core/domain"
)

// ToWeekResponse converts a domain Week to a WeekResponse DTO
func ToWeekResponse(w domain.Week, policy domain.Policy, format string) responses.WeekResponse {
	return responses.WeekResponse{
		Number: w.Number(),
		Year:   w.Year(),
		Start:  w.Start(),
		End:    w.End(),
		Label:  w.Format(format),
		Policy: policy.String(),
	}
}

// ToYearResponse converts the weeks of a year to a YearResponse DTO
func ToYearResponse(year int, weeks []domain.Week, policy domain.Policy, format string) responses.YearResponse {
	resp := responses.YearResponse{
		Year:        year,
		WeeksInYear: len(weeks),
		Policy:      policy.String(),
		Weeks:       make([]responses.WeekResponse, 0, len(weeks)),
	}
	for _, w := range weeks {
		resp.Weeks = append(resp.Weeks, ToWeekResponse(w, policy, format))
	}
	return resp
}
