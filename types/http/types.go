package types

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// Response is the uniform envelope used by every backend endpoint, success or
// failure. Code 200 is the success sentinel; any other code is an error even
// when the transport status is 2xx, and the other way around.
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type ResponseTyped[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

// Backend envelope codes. The numeric values are part of the wire contract.
const (
	CodeOK = 200

	CodeValidationError    = 100
	CodeBoardNotFound      = 40001
	CodeUnauthenticated    = 40100
	CodeInvalidCredentials = 40101
	CodeUserNotApproved    = 40102
	CodeUserAlreadyExist   = 40104
	CodeSessionExpired     = 40105

	CodeFileUploadFailed    = 40200
	CodeFileDeleteFailed    = 40201
	CodeFileTooLarge        = 40202
	CodeFileTypeNotAllowed  = 40203
	CodeFileExtensionDenied = 40204
	CodeFileNotFound        = 40205

	CodeAdminOnly              = 40301
	CodeBoardDeleteForbidden   = 40302
	CodeBoardUpdateForbidden   = 40303
	CodeCommentUpdateForbidden = 40304
	CodeCommentDeleteForbidden = 40305
)

func (r *Response) IsSuccess() bool {
	return r.Code == CodeOK
}

func SerializeResponse(code int, message string, data any) []byte {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Err(err).Msgf("Failed to serialize response data")
	}
	out, err := json.Marshal(&Response{
		Code:    code,
		Message: message,
		Data:    payload,
	})
	if err != nil {
		log.Err(err).Msgf("Failed to serialize response")
	}
	return out
}
