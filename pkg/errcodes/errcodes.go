package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Redemption-code lifecycle.
	CodeNotFound      failure.ErrorCode = "CodeNotFound"      // redeemed already or never issued
	CodeAlreadyExists failure.ErrorCode = "CodeAlreadyExists" // random collision on insert
	CooldownActive    failure.ErrorCode = "CooldownActive"

	// Inventory.
	ItemNotFound    failure.ErrorCode = "ItemNotFound"
	ItemDuplicate   failure.ErrorCode = "ItemDuplicate"
	InventoryEmpty  failure.ErrorCode = "InventoryEmpty"
	InvalidItemKind failure.ErrorCode = "InvalidItemKind"

	// Economy.
	InsufficientBalance failure.ErrorCode = "InsufficientBalance"
	InvalidAmount       failure.ErrorCode = "InvalidAmount"

	// Sessions.
	SessionAlreadyActive failure.ErrorCode = "SessionAlreadyActive"
	SessionNotFound      failure.ErrorCode = "SessionNotFound"

	// External services.
	PasteServiceError     failure.ErrorCode = "PasteServiceError"
	ShortenerServiceError failure.ErrorCode = "ShortenerServiceError"
	DeliveryFailed        failure.ErrorCode = "DeliveryFailed"
	InvalidURL            failure.ErrorCode = "InvalidURL"
)
