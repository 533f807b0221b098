// Package service provides the application-level content generation flow.
// A request is validated and rendered into a prompt before the configured
// generator is called exactly once.
package service
