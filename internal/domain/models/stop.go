package models

// Stop is a named boarding point. Immutable once created; trips reference it
// by id, never embed it.
type Stop struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Detail string `json:"detail"`
}
