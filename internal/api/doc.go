// Package api contains the HTTP handlers and the request/response
// types they exchange with clients. Handlers translate requests into
// service calls and classified service errors into status codes with
// safe messages; internal error detail only ever reaches the logs.
package api
