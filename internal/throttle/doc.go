// Package throttle provides an [http.RoundTripper] that rate-limits
// outbound HTTP requests using a token-bucket algorithm from
// [golang.org/x/time/rate]. It complements the transport core's 429
// retry loop by pacing requests before they leave the client.
package throttle
