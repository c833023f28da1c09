package element

import "errors"

var ErrUnknownKind = errors.New("unknown element kind")
