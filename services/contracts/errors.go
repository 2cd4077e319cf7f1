package contracts

import "errors"

var (
	// ErrAttachmentNotFound is returned when the attachment number does not exist
	ErrAttachmentNotFound = errors.New("attachment does not exist")
	// ErrAttachmentRejected is returned when accepting an already rejected attachment
	ErrAttachmentRejected = errors.New("attachment already rejected")
)
