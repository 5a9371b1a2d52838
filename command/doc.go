// Package command runs request payloads through typed command handlers.
//
// A request is decoded into the handler's command type before the handler
// runs; a payload that does not decode never reaches the handler and yields
// a 400 response. Handlers report expected outcomes by returning a Failure
// (Fail, Forbidden, Unauthorized, BadRequest, InternalServerError), which is
// turned into its response. Any other error, and any panic, is logged and
// answered with a redacted 500.
package command
