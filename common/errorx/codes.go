// ============================================================================
// Unified business error codes
// ============================================================================
//
// Code ranges:
//   0       - success
//   1xxx    - generic errors
//
// ============================================================================

package errorx

const (
	CodeSuccess         = 0    // success
	CodeInternalError   = 1000 // internal server error
	CodeInvalidInput    = 1001 // malformed or empty input
	CodeNotFound        = 1002 // resource does not exist
	CodeConflict        = 1003 // operation conflicts with current state
	CodeTooManyRequests = 1004 // rate limited
)

// codeMessages holds the default message for each code.
var codeMessages = map[int]string{
	CodeSuccess:         "success",
	CodeInternalError:   "internal server error",
	CodeInvalidInput:    "invalid input",
	CodeNotFound:        "resource not found",
	CodeConflict:        "operation conflicts with current state",
	CodeTooManyRequests: "too many requests, please retry later",
}

// GetMessage returns the default message for a code.
func GetMessage(code int) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsValidCode reports whether code is a known business error code.
func IsValidCode(code int) bool {
	_, exists := codeMessages[code]
	return exists
}
