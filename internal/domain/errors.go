package domain

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrTemplateNotFound       = errors.New("template not found")
	ErrValidationFailed       = errors.New("invoice validation failed")
	ErrDuplicateInvoiceNumber = errors.New("invoice number already exists")
	ErrDuplicateProfileName   = errors.New("profile name already exists")
	ErrNoRecipient            = errors.New("no recipient email address")
	ErrArchiveDisabled        = errors.New("artifact archive is not configured")
)
