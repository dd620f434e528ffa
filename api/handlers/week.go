// ABOUTME: Week handlers for the Huma API
// ABOUTME: Provides HTTP endpoints to resolve weeks by number, date, label and year

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"weekcal-api/api/dto/mappers"
	"weekcal-api/api/dto/requests"
	"weekcal-api/api/dto/responses"
	"weekcal-api/core/domain"
	"weekcal-api/core/interfaces"
	"weekcal-api/pkg/featureflags"
	timeutil "weekcal-api/pkg/utils/time"
)

// WeekHandler handles week-related HTTP requests
type WeekHandler struct {
	service       interfaces.WeekService
	defaultPolicy domain.Policy
}

// NewWeekHandler creates a new week handler. defaultPolicy applies when a
// request names neither a locale nor policy fields.
func NewWeekHandler(service interfaces.WeekService, defaultPolicy domain.Policy) *WeekHandler {
	return &WeekHandler{
		service:       service,
		defaultPolicy: defaultPolicy,
	}
}

// RegisterRoutes registers all week-related routes
func (h *WeekHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getCurrentWeek",
		Method:      http.MethodGet,
		Path:        "/weeks/current",
		Summary:     "Current week",
		Description: "Returns the week holding the current instant",
		Tags:        []string{"Weeks"},
	}, h.GetCurrentWeek)

	huma.Register(api, huma.Operation{
		OperationID: "getWeekOfDate",
		Method:      http.MethodGet,
		Path:        "/weeks/date/{date}",
		Summary:     "Week containing a date",
		Description: "Returns the week whose range contains the given date. Early January and late December dates may belong to a neighbouring year's week.",
		Tags:        []string{"Weeks"},
	}, h.GetWeekOfDate)

	huma.Register(api, huma.Operation{
		OperationID: "getWeekNumber",
		Method:      http.MethodGet,
		Path:        "/weeks/number",
		Summary:     "Week number of a date",
		Description: "Returns the bare week number of a date within its own calendar year",
		Tags:        []string{"Weeks"},
	}, h.GetWeekNumber)

	huma.Register(api, huma.Operation{
		OperationID: "getWeekByLabel",
		Method:      http.MethodGet,
		Path:        "/weeks/label/{label}",
		Summary:     "Week from a label",
		Description: "Resolves labels such as 2023-31, 2023-05 or 2023-W05",
		Tags:        []string{"Weeks"},
	}, h.GetWeekByLabel)

	huma.Register(api, huma.Operation{
		OperationID: "listWeeksOfYear",
		Method:      http.MethodGet,
		Path:        "/weeks/{year}",
		Summary:     "Weeks of a year",
		Description: "Lists every week of a week-numbering year",
		Tags:        []string{"Weeks"},
	}, h.ListWeeks)

	huma.Register(api, huma.Operation{
		OperationID: "getWeek",
		Method:      http.MethodGet,
		Path:        "/weeks/{year}/{number}",
		Summary:     "Week by number",
		Description: "Returns the date range of week number of year. Fails with 422 when the year has no such week.",
		Tags:        []string{"Weeks"},
	}, h.GetWeek)
}

// GetWeekInput defines the input for the GetWeek operation
type GetWeekInput struct {
	requests.PolicyQuery
	Year   int `path:"year" doc:"Week-numbering year" example:"2023"`
	Number int `path:"number" doc:"Week number" example:"31"`
}

// GetWeekByLabelInput defines the input for the GetWeekByLabel operation
type GetWeekByLabelInput struct {
	requests.PolicyQuery
	Label string `path:"label" doc:"Year-first week label" example:"2023-W31"`
}

// GetWeekOfDateInput defines the input for the GetWeekOfDate operation
type GetWeekOfDateInput struct {
	requests.PolicyQuery
	Date string `path:"date" doc:"Date in YYYY-MM-DD, RFC 3339 or Unix seconds" example:"2023-08-02"`
}

// GetCurrentWeekInput defines the input for the GetCurrentWeek operation
type GetCurrentWeekInput struct {
	requests.PolicyQuery
}

// GetWeekNumberInput defines the input for the GetWeekNumber operation
type GetWeekNumberInput struct {
	requests.PolicyQuery
	Date string `query:"date" required:"true" doc:"Date in YYYY-MM-DD, RFC 3339 or Unix seconds" example:"2023-08-02"`
}

// ListWeeksInput defines the input for the ListWeeks operation
type ListWeeksInput struct {
	requests.PolicyQuery
	Year int `path:"year" doc:"Week-numbering year" example:"2023"`
}

// WeekOutput wraps a single week
type WeekOutput struct {
	Body responses.WeekResponse
}

// YearOutput wraps a year listing
type YearOutput struct {
	Body responses.YearResponse
}

// WeekNumberOutput wraps a bare week number
type WeekNumberOutput struct {
	Body responses.WeekNumberResponse
}

// GetWeek handles GET /weeks/{year}/{number}
func (h *WeekHandler) GetWeek(ctx context.Context, input *GetWeekInput) (*WeekOutput, error) {
	return h.byNumber(ctx, input.PolicyQuery, input.Year, input.Number)
}

// GetWeekByLabel handles GET /weeks/label/{label}
func (h *WeekHandler) GetWeekByLabel(ctx context.Context, input *GetWeekByLabelInput) (*WeekOutput, error) {
	year, number, err := domain.ParseLabel(input.Label)
	if err != nil {
		return nil, toHumaError(err)
	}
	return h.byNumber(ctx, input.PolicyQuery, year, number)
}

// GetWeekOfDate handles GET /weeks/date/{date}
func (h *WeekHandler) GetWeekOfDate(ctx context.Context, input *GetWeekOfDateInput) (*WeekOutput, error) {
	date, err := timeutil.ParseDate("date", input.Date)
	if err != nil {
		return nil, toHumaError(err)
	}
	return h.byDate(ctx, input.PolicyQuery, date)
}

// GetCurrentWeek handles GET /weeks/current
func (h *WeekHandler) GetCurrentWeek(ctx context.Context, input *GetCurrentWeekInput) (*WeekOutput, error) {
	policy, err := input.Policy(h.defaultPolicy)
	if err != nil {
		return nil, toHumaError(err)
	}

	w := h.service.Current(ctx, policy)
	return h.weekOutput(ctx, w, policy, input.LabelFormat()), nil
}

// GetWeekNumber handles GET /weeks/number
func (h *WeekHandler) GetWeekNumber(ctx context.Context, input *GetWeekNumberInput) (*WeekNumberOutput, error) {
	policy, err := input.Policy(h.defaultPolicy)
	if err != nil {
		return nil, toHumaError(err)
	}
	date, err := timeutil.ParseDate("date", input.Date)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &WeekNumberOutput{
		Body: responses.WeekNumberResponse{
			Date:   date.UTC(),
			Number: h.service.WeekOf(date, policy),
			Policy: policy.String(),
		},
	}, nil
}

// ListWeeks handles GET /weeks/{year}
func (h *WeekHandler) ListWeeks(ctx context.Context, input *ListWeeksInput) (*YearOutput, error) {
	policy, err := input.Policy(h.defaultPolicy)
	if err != nil {
		return nil, toHumaError(err)
	}

	count, err := h.service.WeeksInYear(ctx, input.Year, policy)
	if err != nil {
		return nil, toHumaError(err)
	}

	weeks := make([]domain.Week, 0, count)
	for n := domain.MinWeekNumber; n <= count; n++ {
		w, err := h.service.FromNumber(ctx, input.Year, n, policy)
		if err != nil {
			return nil, toHumaError(err)
		}
		weeks = append(weeks, w)
	}

	return &YearOutput{Body: mappers.ToYearResponse(input.Year, weeks, policy, input.LabelFormat())}, nil
}

func (h *WeekHandler) byNumber(ctx context.Context, q requests.PolicyQuery, year, number int) (*WeekOutput, error) {
	policy, err := q.Policy(h.defaultPolicy)
	if err != nil {
		return nil, toHumaError(err)
	}

	w, err := h.service.FromNumber(ctx, year, number, policy)
	if err != nil {
		return nil, toHumaError(err)
	}
	return h.weekOutput(ctx, w, policy, q.LabelFormat()), nil
}

func (h *WeekHandler) byDate(ctx context.Context, q requests.PolicyQuery, date time.Time) (*WeekOutput, error) {
	policy, err := q.Policy(h.defaultPolicy)
	if err != nil {
		return nil, toHumaError(err)
	}

	w := h.service.FromDate(ctx, date, policy)
	return h.weekOutput(ctx, w, policy, q.LabelFormat()), nil
}

// weekOutput maps w and links its neighbours unless the adjacent weeks
// flag is off. Neighbours outside the supported year range are left out.
func (h *WeekHandler) weekOutput(ctx context.Context, w domain.Week, policy domain.Policy, format string) *WeekOutput {
	body := mappers.ToWeekResponse(w, policy, format)
	if !featureflags.IsEnabled(ctx, featureflags.AdjacentWeeks) {
		return &WeekOutput{Body: body}
	}
	if prev, err := h.service.Previous(ctx, w, policy); err == nil {
		body.Previous = prev.Format(domain.FormatYearFirstLong)
	}
	if next, err := h.service.Next(ctx, w, policy); err == nil {
		body.Next = next.Format(domain.FormatYearFirstLong)
	}
	return &WeekOutput{Body: body}
}
