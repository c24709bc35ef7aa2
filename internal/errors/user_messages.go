package errors

// User-friendly error messages
const (
	MsgUnauthorized   = "Authentication required. Please sign in and try again."
	MsgForbidden      = "You are not authorized to perform this action."
	MsgNotFound       = "The requested resource was not found."
	MsgRateLimited    = "You're making requests too quickly! Please wait a moment and try again."
	MsgInternalError  = "Something went wrong on our end. Please try again later."
	MsgDuplicateEmail = "This email address is already in use."
	MsgLastAdmin      = "The last remaining admin account cannot be deleted."
)
