package models

// APIError is a single structured error returned by the backend. The code is
// stable across API versions and is what the client keys its conflict
// handling on; the message is informational only.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope of every failed backend call.
type ErrorResponse struct {
	Errors []APIError `json:"errors"`
}

// Structured error codes of the backend API.
const (
	// APIErrorUnexpected is the catch-all server failure code.
	APIErrorUnexpected = 1000

	// APIErrorAccessTokenMustBeRenewed signals an expired access token. The
	// adapter renews the session once and retries the original call.
	APIErrorAccessTokenMustBeRenewed = 1101

	// APIErrorActionNotAllowed signals an operation the session may not
	// perform, e.g. deleting a record it does not own.
	APIErrorActionNotAllowed = 1102

	// APIErrorUuidAlreadyInUse signals a create with a uuid that already
	// exists, i.e. another device created the record first.
	APIErrorUuidAlreadyInUse = 2704

	// APIErrorTableObjectDoesNotExist signals an update or delete of a record
	// the server no longer knows.
	APIErrorTableObjectDoesNotExist = 2805
)

// HasCode reports whether the envelope contains an error with the given code.
func (r ErrorResponse) HasCode(code int) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}
