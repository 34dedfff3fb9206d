package service

import "errors"

var (
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrBatchNotFound        = errors.New("batch not found")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrGroupNotFound        = errors.New("group not found")
	ErrPostNotFound         = errors.New("post not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrSlotNotFound         = errors.New("office hour slot not found")
	ErrRequestNotFound      = errors.New("office hour request not found")
)
