// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

WithLogging wraps handlers with structured request/response logging via
log/slog, tagging both lines with a generated request id:

	mux.HandleFunc("GET /dashboard", middleware.WithLogging(h.GetDashboard))

# Response Helpers

  - JSONResponse: write a JSON body with a status code
  - ErrorResponse: write a models.ErrorResponse
  - ParseJSONBody: decode a JSON request body

# CORS

CORS allows the dashboard frontend to call the API cross-origin and
answers preflight requests.

# Client IP

GetClientIP resolves the submitter's address, which the vote handler
stores as the comment-attachment correlation key. Precedence:
X-Forwarded-For (first hop), X-Real-IP, RemoteAddr.
*/
package middleware
