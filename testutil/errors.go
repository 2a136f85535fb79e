package testutil

// SameErrorString reports whether err and target are both nil or
// carry the same message.
func SameErrorString(err, target error) bool {
	if err == nil && target == nil {
		return true
	}
	if err == nil || target == nil {
		return false
	}
	return err.Error() == target.Error()
}
