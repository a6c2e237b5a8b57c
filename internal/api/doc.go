// Package api implements the HTTP transport core for the TON API:
// authentication header injection, rate-limit retry with a bounded
// attempt count, and HTTP-status-to-error mapping. The public tonapi
// package builds its typed resource methods on top of this package.
package api
