// Package diagnostic provides structured validation failures for decoded records.
//
// Key capabilities:
//   - Located violations ('field'.'nested': message)
//   - Required-field reports
//   - A single error value that renders every violation
package diagnostic
