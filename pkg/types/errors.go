package types

import "errors"

// Serialization errors.
var (
	ErrDeserialize = errors.New("unable to deserialize")
)

// Capability operation errors.
var (
	ErrTagNotFound         = errors.New("tag not found")
	ErrInvalidContent      = errors.New("content is not valid UTF-8")
	ErrByteValueOutOfRange = errors.New("byte value out of range")
)
