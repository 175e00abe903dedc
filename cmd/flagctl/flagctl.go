package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/iotaledger/flagset"
	"github.com/iotaledger/flagset/bitmask"
	"github.com/iotaledger/flagset/constraints"
	"github.com/iotaledger/flagset/ierrors"
	"github.com/iotaledger/flagset/logger"
	"github.com/iotaledger/flagset/stringify"
)

func run(args []string, stdout io.Writer) error {
	flagSet := newFlagSet()
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(flagSet)
	if err != nil {
		return err
	}

	log, err := logger.NewRootLogger(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	initial, err := parseMask(cfg.Mask.Value, cfg.Mask.Width)
	if err != nil {
		return ierrors.Wrap(err, "invalid initial value")
	}

	operations, err := parseOperations(flagSet.Args(), cfg.Mask.Width)
	if err != nil {
		return err
	}

	switch cfg.Mask.Width {
	case 8:
		return process[uint8](initial, operations, log, stdout)
	case 16:
		return process[uint16](initial, operations, log, stdout)
	case 32:
		return process[uint32](initial, operations, log, stdout)
	default:
		return process[uint64](initial, operations, log, stdout)
	}
}

// process applies the operations to a bitmask of type T and writes the checks and the final state to out.
func process[T constraints.Unsigned](initial uint64, operations []Operation, log *zap.SugaredLogger, out io.Writer) error {
	mask := bitmask.From(T(initial))
	flags := flagset.Wrap[T](mask)

	render := func(value T) string {
		return stringify.Binary(uint64(value), mask.Width())
	}

	for _, operation := range operations {
		operand := T(operation.Mask)

		switch operation.Type {
		case OperationEnable:
			flags.Enable(operand)
		case OperationDisable:
			flags.Disable(operand)
		case OperationToggle:
			flags.Toggle(operand)
		case OperationCheck:
			if _, err := fmt.Fprintf(out, "check %s: %t\n", render(operand), flags.IsEnabled(operand)); err != nil {
				return err
			}

			continue
		}

		log.Debugw("applied operation", "operation", string(operation.Type), "mask", render(operand), "value", render(flags.Value()))
	}

	encoded, err := mask.Bytes()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "value: %s\nbytes: %x\n", render(flags.Value()), encoded)

	return err
}
