// Package handler implements the HTTP layer for the Aisle API.
//
// Handlers are thin: decode the request, call one service method, write the
// result. All domain decisions live in the service layer.
//
// # Response Envelope
//
// Successful responses wrap the payload in a data envelope with optional
// HATEOAS links:
//
//	{"data": {...}, "_links": {"self": "/v1/weddings/abc"}}
//
// # Error Responses
//
// Errors are RFC 9457 problem details with an extension "code" field that
// names the domain error kind. The error mapper in error_mapper.go is the
// single place where service sentinels become HTTP responses; handlers never
// pick status codes themselves.
package handler
