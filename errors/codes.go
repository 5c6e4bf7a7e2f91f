package errors

import "strconv"

// ErrorCode enumerates application error codes returned to API clients.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK           ErrorCode = 0
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS    ErrorCode = 1003
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1005
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1006
	ErrorCode_FORBIDDEN         ErrorCode = 1007
	ErrorCode_VALIDATION_FAILED ErrorCode = 1008

	ErrorCode_AUTH_INVALID_TOKEN ErrorCode = 2001
	ErrorCode_AUTH_TOKEN_EXPIRED ErrorCode = 2002

	ErrorCode_CANDIDATE_NOT_FOUND ErrorCode = 3001
	ErrorCode_DRAFT_NOT_FOUND     ErrorCode = 3002
	ErrorCode_NO_AUDIO            ErrorCode = 3003
	ErrorCode_NOTHING_TO_SYNC     ErrorCode = 3004

	ErrorCode_ANALYSIS_NOT_FOUND      ErrorCode = 4001
	ErrorCode_ANALYSIS_ALREADY_EXISTS ErrorCode = 4002
	ErrorCode_AI_ANALYSIS_FAILED      ErrorCode = 4003
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 4004
	ErrorCode_AI_MALFORMED_RESPONSE   ErrorCode = 4005
	ErrorCode_AI_SERVICE_UNAVAILABLE  ErrorCode = 4006

	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = 5001
	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = 5002
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 5003

	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 6001
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 6002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                         "HTTP_OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:                  "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:               "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:                 "UNAUTHENTICATED",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_FORBIDDEN:                       "FORBIDDEN",
	ErrorCode_VALIDATION_FAILED:               "VALIDATION_FAILED",
	ErrorCode_AUTH_INVALID_TOKEN:              "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:              "AUTH_TOKEN_EXPIRED",
	ErrorCode_CANDIDATE_NOT_FOUND:             "CANDIDATE_NOT_FOUND",
	ErrorCode_DRAFT_NOT_FOUND:                 "DRAFT_NOT_FOUND",
	ErrorCode_NO_AUDIO:                        "NO_AUDIO",
	ErrorCode_NOTHING_TO_SYNC:                 "NOTHING_TO_SYNC",
	ErrorCode_ANALYSIS_NOT_FOUND:              "ANALYSIS_NOT_FOUND",
	ErrorCode_ANALYSIS_ALREADY_EXISTS:         "ANALYSIS_ALREADY_EXISTS",
	ErrorCode_AI_ANALYSIS_FAILED:              "AI_ANALYSIS_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:         "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_MALFORMED_RESPONSE:           "AI_MALFORMED_RESPONSE",
	ErrorCode_AI_SERVICE_UNAVAILABLE:          "AI_SERVICE_UNAVAILABLE",
	ErrorCode_INTEGRATION_STORAGE_FAILED:      "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:        "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:            "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:                 "DB_QUERY_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}
