// Package api provides the HTTP API layer for the week calendar service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: request logging and per-IP rate limiting
//
// # Endpoints
//
//	GET /weeks/{year}/{number}   week by number
//	GET /weeks/label/{label}     week by "2023-31" or "2023-W31"
//	GET /weeks/date/{date}       week containing a date
//	GET /weeks/current           week containing now
//	GET /weeks/number?date=      bare week number of a date
//	GET /weeks/{year}            every week of a year
//
// Every week endpoint accepts locale, first_day, rule and format query
// parameters. The JSON spec is at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:    logger,
//	    RateLimit: 10,
//	    RateBurst: 20,
//	})
//
//	handlers.NewWeekHandler(weekService, domain.DefaultPolicy).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. A week a year does not have, or a
// number or year out of bounds, is 422; an unparsable date, rule, day or
// locale is 400.
package api
