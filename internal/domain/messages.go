package domain

// Failure message formats. Kept as a single catalogue so validation rules
// and orchestration failures notify with consistent texts.
const (
	MsgBlankField      = "The field %s cannot be empty."
	MsgFieldLength     = "The field %s must be between %d and %d characters."
	MsgFieldExactLen   = "The field %s must have exactly %d characters."
	MsgFieldNotLinked  = "The field %s must be linked to an existing record of %s."
	MsgInvalidDocument = "The field %s does not contain a valid document number."
	MsgInvalidState    = "The field %s does not contain a valid state code."
	MsgUnderage        = "The field %s requires the %s to be at least 18 years old."
	MsgAddressOwner    = "An address must belong to exactly one owner: a company or a candidate."

	MsgSaveError      = "An error occurred while saving the record."
	MsgUpdateError    = "An error occurred while updating the record."
	MsgDeleteError    = "An error occurred while deleting the record."
	MsgRecordNotFound = "Record not found."
	MsgUnexpected     = "An unexpected error occurred: %s"
	MsgIDMismatch     = "The ID in the request path does not match the ID of the submitted record."
)
