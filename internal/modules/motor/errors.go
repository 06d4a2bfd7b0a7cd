package motor

import "errors"

var ErrMotorNotFound = errors.New("motor not found")
