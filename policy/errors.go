package policy

import "errors"

var ErrUnknownPolicy = errors.New("unknown exit policy")
