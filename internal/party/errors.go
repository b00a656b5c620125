package party

import "errors"

var (
	errAlreadyGrouped = errors.New("party: entity already belongs to a group")
	errNoSuchGroup    = errors.New("party: no group to join")
	errTooManyMembers = errors.New("party: group already at max size")
)
