package apt

import "errors"

var (
	ErrAptGet = errors.New("apt-get failed")
)
