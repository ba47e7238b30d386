package openapi

import (
	"errors"
	"regexp"
)

var (
	ErrFormat      = errors.New("format error")
	ErrInvalidName = errors.New("invalid name: must not contain any of \" * \\ > < ? / : | and must not end with '.' or a space")
)

// NodeNameMaxLength is the longest name the repository will store.
const NodeNameMaxLength = 255

var nodeNameInvalidRegex = regexp.MustCompile(`(.*["*\\><?/:|]+.*)|(.*[.]+$)|(.*[ ]+$)`)

type NodeName struct {
	Value string
}

func (n *NodeName) UnmarshalText(text []byte) error {
	if err := ValidateNodeName(string(text)); err != nil {
		return err
	}

	*n = NodeName{
		Value: string(text),
	}

	return nil
}

// ValidateNodeName applies the repository's naming rules, the server
// answers 422 for anything that fails here.
func ValidateNodeName(name string) error {
	if name == "" || len(name) > NodeNameMaxLength || nodeNameInvalidRegex.MatchString(name) {
		return ErrInvalidName
	}

	return nil
}
