package models

import "time"

// AttachmentStatus is the acceptance state of a contract attachment
type AttachmentStatus string

const (
	AttachmentStatusProposed           AttachmentStatus = "PROPOSED"
	AttachmentStatusAcceptedByOneSide  AttachmentStatus = "ACCEPTED_BY_ONE_SIDE"
	AttachmentStatusAcceptedByBothSide AttachmentStatus = "ACCEPTED_BY_BOTH_SIDES"
	AttachmentStatusRejected           AttachmentStatus = "REJECTED"
)

// ContractAttachment is a document proposed under a contract; both parties
// must accept it before it is binding
type ContractAttachment struct {
	ID           int64            `json:"id" db:"id"`
	AttachmentNo string           `json:"contract_attachment_no" db:"contract_attachment_no"`
	ContractID   int64            `json:"contract_id" db:"contract_id"`
	Status       AttachmentStatus `json:"status" db:"status"`
	AcceptedAt   *time.Time       `json:"accepted_at" db:"accepted_at"`
	RejectedAt   *time.Time       `json:"rejected_at" db:"rejected_at"`
	ChangeDate   *time.Time       `json:"change_date" db:"change_date"`
}
