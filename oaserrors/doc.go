// Package oaserrors provides structured error types for the oaslint library.
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors.
//
// Note that schema findings (type mismatches, discriminator wiring problems)
// are not Go errors. They are collected as issues and returned in the
// validation result. The types here describe conditions that prevent a
// validation run from producing a trustworthy result.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON parsing failures and malformed schema keywords
//   - [ReferenceError]: unresolvable, external, or circular-alias $ref values
//   - [InvalidGraphError]: a schema graph that violates walker preconditions
//   - [ConfigError]: invalid rule configuration or input options
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrInvalidGraph]: Matches any [InvalidGraphError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
//	result, err := validator.ValidateWithOptions(validator.WithFilePath("api.yaml"))
//	if err != nil {
//	    var graphErr *oaserrors.InvalidGraphError
//	    if errors.As(err, &graphErr) {
//	        fmt.Println("broken schema at", graphErr.Pointer)
//	    }
//	}
package oaserrors
