package command

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/phrazzld/projector/internal/config"
	"github.com/phrazzld/projector/internal/platform/logger"
)

// Store is the subset of the store engine the dispatcher drives.
type Store interface {
	Value(key string) (string, bool)
	Values() map[string]string
	Set(key, value string)
	Remove(key string)
	Save() error
}

// Dispatcher maps operations onto store calls.
type Dispatcher struct {
	store Store
	out   io.Writer
}

// New creates a Dispatcher writing command output to out.
func New(store Store, out io.Writer) *Dispatcher {
	return &Dispatcher{
		store: store,
		out:   out,
	}
}

// Execute runs op. A key that is not found produces no output and no error.
func (d *Dispatcher) Execute(ctx context.Context, op config.Operation) error {
	if op == nil {
		return fmt.Errorf("no operation to execute")
	}
	log := logger.FromContext(ctx).With("operation", op.Name())

	switch op := op.(type) {
	case config.PrintAll:
		return d.printAll()

	case config.PrintKey:
		value, ok := d.store.Value(op.Key)
		if !ok {
			log.DebugContext(ctx, "key not found", "key", op.Key)
			return nil
		}
		if _, err := fmt.Fprintln(d.out, value); err != nil {
			return fmt.Errorf("failed to write value: %w", err)
		}
		return nil

	case config.Add:
		d.store.Set(op.Key, op.Value)
		if err := d.store.Save(); err != nil {
			return fmt.Errorf("failed to add %q: %w", op.Key, err)
		}
		log.DebugContext(ctx, "value saved", "key", op.Key)
		return nil

	case config.Remove:
		d.store.Remove(op.Key)
		if err := d.store.Save(); err != nil {
			return fmt.Errorf("failed to remove %q: %w", op.Key, err)
		}
		log.DebugContext(ctx, "value removed", "key", op.Key)
		return nil

	default:
		return fmt.Errorf("unsupported operation %T", op)
	}
}

// printAll renders the merged values as indented JSON. Values are written
// verbatim, so characters such as & < > are not escaped.
func (d *Dispatcher) printAll() error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.store.Values()); err != nil {
		return fmt.Errorf("failed to encode values: %w", err)
	}
	if _, err := buf.WriteTo(d.out); err != nil {
		return fmt.Errorf("failed to write values: %w", err)
	}
	return nil
}
