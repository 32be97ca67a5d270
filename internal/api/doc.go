// Package api exposes the readkit metrics as a JSON HTTP service.
//
// Routes:
//
//	POST /v1/syllables   {"words":[...]}                      counts per word and total
//	POST /v1/words       {"text":"..."}                       word count and list
//	POST /v1/tokens      {"text":"..."}                       token count, list and spans
//	POST /v1/sentences   {"text":"..."}                       sentence count and list
//	POST /v1/readability {"text":"..."} or {"words","sentences","syllables"}
//	POST /v1/analyze     {"texts":[...]}                      one report per text
//	GET  /health/live
//	GET  /health/ready
//
// Successful responses are wrapped as {"data": ...}; failures as
// {"error":{"code","message"}} with 400 for malformed JSON, 413 for oversized
// bodies, 415 for a non-JSON content type and 422 for empty or unscorable
// input.
//
// Every request gets an X-Request-ID (the client's, when well formed) that is
// echoed in the response and attached to log records via RequestIDExtractor.
package api
