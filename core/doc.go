// Package core contains the business logic for the week calendar.
// It is framework-agnostic and can be used without the HTTP layer.
//
// The core package is organized into several sub-packages:
//
// - domain: the Week value, its Span, and the numbering Policy
// - calendar: week-of-year arithmetic, the range resolver, locale policies
// - week: the service combining calendar math with caching and logging
// - errors: OutOfRange and Validation error types
// - interfaces: contracts for injected dependencies (cache, logger, clock)
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:  myCache,  // implements interfaces.Cache, optional
//	    Logger: myLogger, // implements interfaces.Logger, optional
//	}
//
//	svc := week.NewService(deps, week.DefaultCacheTTL)
//
//	w, err := svc.FromNumber(ctx, 2023, 31, domain.DefaultPolicy)
//	// w.Format("S") == "31-2023 (2023-07-31 ~ 2023-08-06)"
//
//	w = svc.FromDate(ctx, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), domain.DefaultPolicy)
//	// week 53 of 2020
package core
