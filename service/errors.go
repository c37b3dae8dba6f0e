package service

import "errors"

// Sentinel errors for the authorization / workflow / lifecycle layer.
// Controllers map these onto HTTP statuses with errors.Is; anything else
// coming out of a service is a persistence failure and becomes a 500.
var (
	ErrPermissionDenied  = errors.New("you do not have permission to perform this action")
	ErrDifferentBranch   = errors.New("you can only update records from your branch")
	ErrNotFound          = errors.New("record not found")
	ErrAlreadyDeleted    = errors.New("record is already deleted")
	ErrNotDeleted        = errors.New("record is not deleted")
	ErrNotSignatory      = errors.New("only the designated signatory can toggle this flag")
	ErrTableNotAllowed   = errors.New("table is not allowed for signatory approval")
	ErrUnknownFormType   = errors.New("unknown form type")
	ErrNotApprovable     = errors.New("this form type does not go through approval")
	ErrInvalidStatus     = errors.New("status is required")
	ErrInvalidTransition = errors.New("record is not pending approval")
	ErrWrongLevel        = errors.New("record is not pending at your approval level")
	ErrInvalidField      = errors.New("field must be noted_by or approved_by")
)
