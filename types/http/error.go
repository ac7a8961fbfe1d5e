package types

import "strings"

// Kind classifies a backend envelope code into the behavior the caller should
// take. Literal codes stay in the transport layer; everything above it
// switches on Kind.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindUnauthenticated
	KindInvalidCredentials
	KindPendingApproval
	KindConflict
	KindSessionExpired
	KindForbidden
	KindNotFound
	KindFileError

	// KindUnparseable is client-side only: the response body could not be
	// decoded as an envelope at all.
	KindUnparseable
)

var kindNames = map[Kind]string{
	KindUnknown:            "UNKNOWN",
	KindValidation:         "VALIDATION",
	KindUnauthenticated:    "UNAUTHENTICATED",
	KindInvalidCredentials: "INVALID_CREDENTIALS",
	KindPendingApproval:    "PENDING_APPROVAL",
	KindConflict:           "CONFLICT",
	KindSessionExpired:     "SESSION_EXPIRED",
	KindForbidden:          "FORBIDDEN",
	KindNotFound:           "NOT_FOUND",
	KindFileError:          "FILE_ERROR",
	KindUnparseable:        "UNPARSEABLE_RESPONSE",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// KindOfCode maps a backend envelope code to its Kind. Codes without a mapping
// resolve to KindUnknown.
func KindOfCode(code int) Kind {
	switch code {
	case CodeValidationError:
		return KindValidation
	case CodeUnauthenticated:
		return KindUnauthenticated
	case CodeInvalidCredentials:
		return KindInvalidCredentials
	case CodeUserNotApproved:
		return KindPendingApproval
	case CodeUserAlreadyExist:
		return KindConflict
	case CodeSessionExpired:
		return KindSessionExpired
	case CodeBoardNotFound, CodeFileNotFound:
		return KindNotFound
	case CodeAdminOnly, CodeBoardDeleteForbidden, CodeBoardUpdateForbidden,
		CodeCommentUpdateForbidden, CodeCommentDeleteForbidden:
		return KindForbidden
	case CodeFileUploadFailed, CodeFileDeleteFailed, CodeFileTooLarge,
		CodeFileTypeNotAllowed, CodeFileExtensionDenied:
		return KindFileError
	}
	return KindUnknown
}

// APIError carries the envelope error back to the caller together with its
// classification. HTTPStatus is the raw transport status, kept separate from
// Code because the envelope is the source of truth for success or failure.
type APIError struct {
	Kind       Kind
	Code       int
	HTTPStatus int
	Message    string

	// Validation holds the field or global messages delivered when the
	// envelope carries a validation error (data is a string array).
	Validation []string
}

func (e *APIError) Error() string {
	msg := "(" + e.Kind.String() + ") " + e.Message
	if len(e.Validation) > 0 {
		msg += ": " + strings.Join(e.Validation, "; ")
	}
	return msg
}
