// Package content defines the content generation request and response
// types, the declarative validation that turns raw request input into a
// normalized Request, and the prompt builder that renders a Request into
// the natural-language instruction sent to the language model.
//
// Everything in this package is pure and safe for concurrent use.
package content
