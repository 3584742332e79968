// Package litmos is a client for the Litmos learning-management REST API.
//
// # Overview
//
// The client turns calls such as Get(ctx, "users", params) into authenticated
// HTTP requests against https://api.<host>/v<version>.svc and turns the
// responses into either a *Response or a typed *Error. Resource helpers for
// users, teams and courses live in the resources subpackage and only use the
// four verb methods of Client.
//
// # Configuration Example
//
//	client, err := litmos.NewClient(litmos.Config{
//	  APIKey: os.Getenv("LITMOS_API_KEY"),
//	  Source: "my-site",
//	})
//
// APIKey and Source are required; a missing value fails with an error that
// matches ErrConfiguration.
//
// # Requests
//
// GET and DELETE send the API key and source as query parameters. POST and
// PUT send the source in the query string and the params as a JSON body.
// Every request carries the "apikey" header and JSON content negotiation
// headers. One call issues exactly one HTTP request; nothing is retried or
// cached.
//
// # Responses
//
// Successful bodies are decoded and normalized: object keys become
// snake_case and "/Date(...)/" strings become time.Time values. Passing
// DontParseResponse: true in the params returns the raw body instead.
//
// # Error Handling
//
//   - 404 matches ErrNotFound
//   - 503 matches ErrRateLimited (the API allows 100 requests per rolling minute)
//   - any other non-success status matches ErrAPI
//
// Every *Error keeps the status code and raw body. Transport errors from the
// underlying *http.Client are returned unchanged.
package litmos
