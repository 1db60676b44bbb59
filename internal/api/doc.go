// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It adapts external clients to the internal task
// and permission services, translating HTTP concerns (status codes, JSON
// bodies, bearer tokens) into business operations and back.
package api
