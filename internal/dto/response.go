package dto

import "notes-taking-be/internal/constant"

// Response is the uniform envelope returned by every service function.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func SuccessResponse(message string, data interface{}) *Response {
	return &Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NoteNotFound is the shared not-found envelope.
func NoteNotFound() *Response {
	return &Response{
		Success: false,
		Message: constant.NoteNotFound,
	}
}

// NoteDeleted is the shared deleted envelope, used by both hard and soft
// delete.
func NoteDeleted() *Response {
	return &Response{
		Success: true,
		Message: constant.NoteDeleted,
		Data:    nil,
	}
}
