package enumerator

import "fmt"

// Fixed caller-facing messages. These are a compatibility contract: callers
// match on them, so Error() returns the message alone and the underlying
// cause travels separately through Unwrap.
const (
	msgCredentials    = "Cannot obtain credentials for specified account"
	msgConnect        = "Cannot connect to ec2 region"
	msgInstances      = "Cannot get instances for named account"
	msgAllInstances   = "Cannot get all instances"
	msgELBs           = "Cannot get ELBs for named account"
	msgAllELBs        = "Cannot get all ELBs"
	msgInstanceStatus = "Cannot obtain instance status"
	msgEvents         = "Cannot get instance maintenance events"
	msgSecGroups      = "Cannot get security groups for named account"
	msgAllSecGroups   = "Cannot get all security groups"
)

// Error is the single failure type returned by every enumeration operation.
// Op names the method that failed, Msg is the fixed message, and Err holds
// the underlying cause (nil for credential lookup misses, which have no
// external cause).
type Error struct {
	Op  string
	Msg string
	Err error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrapErr(op, msg string, err error) *Error {
	return &Error{Op: op, Msg: msg, Err: err}
}

// String implements fmt.Stringer for diagnostic output; unlike Error it
// includes the cause chain.
func (e *Error) String() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
}
