// Package api handles incoming HTTP requests, request decoding, and response
// formatting. It acts as an adapter between HTTP clients and the content
// service, translating every failure into the single error shape the
// endpoint exposes.
package api
