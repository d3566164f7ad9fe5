package fonts

import "errors"

var (
	// ErrEmptyFamily means no family name was given.
	ErrEmptyFamily = errors.New("fonts: family is empty")

	// ErrNotFound means the family has no folder in the fonts repository.
	ErrNotFound = errors.New("fonts: family not found")

	// ErrNoFontFile means the family folder holds no usable font file.
	ErrNoFontFile = errors.New("fonts: no font file for family")
)
