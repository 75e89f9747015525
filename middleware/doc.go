// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request id comes from X-Request-ID when present,
otherwise a new UUID, and is echoed back in the response header.

# Caching

Read endpoints are wrapped with a shared-cache header:

	middleware.WithCache(300, 600, handler)
	// Cache-Control: public, s-maxage=300, stale-while-revalidate=600

ErrorResponse replaces it with no-store.

# Compression and CORS

Wrap the whole mux:

	server := http.Server{
		Handler: middleware.Gzip(middleware.CORS(mux)),
	}

Gzip uses klauspost/compress gzhttp and skips small bodies. CORS allows
GET and OPTIONS from any origin.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
