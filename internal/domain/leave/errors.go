package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveNotFound   = errors.New("leave request not found")
	ErrAlreadyDecided  = errors.New("leave request has already been decided")
	ErrOverlappingLeave = errors.New("an overlapping leave request already exists")
)
