// Package httputil provides small HTTP helpers used when loading tree
// documents from remote locations: a retry wrapper with exponential
// backoff and a fetch helper that treats transient failures (network
// errors, 5xx responses) as retryable.
package httputil
