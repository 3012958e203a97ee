package payment

import (
	stderrors "errors"

	"go.uber.org/zap"

	"storefront/adapters/externala"
	"storefront/adapters/externalb"
	"storefront/core/report"
	"storefront/internal/errors"
	"storefront/internal/logging"
)

// ErrUnsupportedConfiguration is returned when a selection tag names no known processor
var ErrUnsupportedConfiguration = stderrors.New("unsupported payment configuration")

// Kind names a payment processor
type Kind string

const (
	KindInternal  Kind = "Internal"
	KindExternalA Kind = "ExternalA"
	KindExternalB Kind = "ExternalB"
)

// Kinds returns every selectable processor
func Kinds() []Kind {
	return []Kind{KindInternal, KindExternalA, KindExternalB}
}

// String returns the selection tag
func (k Kind) String() string {
	return string(k)
}

// ParseKind matches tag exactly against the known processors
func ParseKind(tag string) (Kind, error) {
	switch k := Kind(tag); k {
	case KindInternal, KindExternalA, KindExternalB:
		return k, nil
	default:
		return "", errors.Config("unknown payment system type", ErrUnsupportedConfiguration).
			WithContext("tag", tag)
	}
}

// Select builds the processor named by tag, reporting to stdout
func Select(tag string) (Operation, error) {
	return SelectWith(tag, report.Stdout())
}

// SelectWith builds the processor named by tag, reporting to r.
// Every call constructs a new processor and, for external systems, a new client.
func SelectWith(tag string, r report.Reporter) (Operation, error) {
	kind, err := ParseKind(tag)
	if err != nil {
		logging.Debug("payment processor rejected", zap.String("tag", tag))
		return nil, err
	}

	logging.Debug("payment processor selected", zap.Stringer("kind", kind))

	switch kind {
	case KindExternalA:
		return NewAdapterA(externala.New(r)), nil
	case KindExternalB:
		return NewAdapterB(externalb.New(r)), nil
	default:
		return NewInternal(r), nil
	}
}
