package main

import (
	"strconv"
	"strings"

	"github.com/iotaledger/flagset/ierrors"
	"github.com/iotaledger/flagset/lo"
)

var (
	// ErrInvalidWidth is returned if the configured width is not the size of an unsigned integer type.
	ErrInvalidWidth = ierrors.New("invalid mask width")
	// ErrInvalidMask is returned if a mask can not be parsed.
	ErrInvalidMask = ierrors.New("invalid mask")
	// ErrMaskTooWide is returned if a mask has bits set beyond the configured width.
	ErrMaskTooWide = ierrors.New("mask exceeds width")
	// ErrInvalidOperation is returned if an operation token is malformed or unknown.
	ErrInvalidOperation = ierrors.New("invalid operation")
)

// OperationType is the kind of flag operation.
type OperationType string

const (
	OperationEnable  OperationType = "enable"
	OperationDisable OperationType = "disable"
	OperationToggle  OperationType = "toggle"
	OperationCheck   OperationType = "check"
)

// Operation is a single flag operation applied to the mask.
type Operation struct {
	Type OperationType
	Mask uint64
}

func validateWidth(width int) error {
	switch width {
	case 8, 16, 32, 64:
		return nil
	default:
		return ierrors.Wrapf(ErrInvalidWidth, "%d bits", width)
	}
}

// parseMask parses a Go integer literal that has to fit into width bits.
func parseMask(literal string, width int) (uint64, error) {
	if err := validateWidth(width); err != nil {
		return 0, err
	}

	mask, err := strconv.ParseUint(literal, 0, width)
	if err != nil {
		if ierrors.Is(err, strconv.ErrRange) {
			return 0, ierrors.Wrapf(ErrMaskTooWide, "%s does not fit into %d bits", literal, width)
		}

		return 0, ierrors.Wrapf(ErrInvalidMask, "%q", literal)
	}

	return mask, nil
}

// parseOperation parses a token of the form "type:mask".
func parseOperation(token string, width int) (Operation, error) {
	name, literal, found := strings.Cut(token, ":")
	if !found || literal == "" {
		return Operation{}, ierrors.Wrapf(ErrInvalidOperation, "%q is not of the form operation:mask", token)
	}

	operationType := OperationType(strings.ToLower(name))
	switch operationType {
	case OperationEnable, OperationDisable, OperationToggle, OperationCheck:
	default:
		return Operation{}, ierrors.Wrapf(ErrInvalidOperation, "unknown operation %q", name)
	}

	mask, err := parseMask(literal, width)
	if err != nil {
		return Operation{}, err
	}

	return Operation{Type: operationType, Mask: mask}, nil
}

func parseOperations(tokens []string, width int) ([]Operation, error) {
	var errs []error
	operations := lo.Map(tokens, func(token string) Operation {
		operation, err := parseOperation(token, width)
		errs = append(errs, err)

		return operation
	})

	if err := ierrors.Join(errs...); err != nil {
		return nil, err
	}

	return operations, nil
}
