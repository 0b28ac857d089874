package config

import "fmt"

// Verbs recognized as the first positional argument.
const (
	VerbAdd    = "add"
	VerbRemove = "rm"
)

// Operation is the command a single invocation performs. The set of
// implementations is closed: PrintAll, PrintKey, Add and Remove.
type Operation interface {
	// Name identifies the operation in logs.
	Name() string

	isOperation()
}

// PrintAll prints every value visible from the working directory.
type PrintAll struct{}

// PrintKey prints the value of a single key as seen from the working directory.
type PrintKey struct {
	Key string
}

// Add sets a key on the working directory itself.
type Add struct {
	Key   string
	Value string
}

// Remove deletes a key from the working directory itself.
type Remove struct {
	Key string
}

func (PrintAll) Name() string { return "print" }
func (PrintKey) Name() string { return "print_key" }
func (Add) Name() string      { return "add" }
func (Remove) Name() string   { return "rm" }

func (PrintAll) isOperation() {}
func (PrintKey) isOperation() {}
func (Add) isOperation()      {}
func (Remove) isOperation()   {}

// ParseOperation maps positional arguments onto an Operation.
//
//	[]              -> PrintAll
//	[key]           -> PrintKey
//	[add key value] -> Add
//	[rm key]        -> Remove
//
// Any other shape returns an error wrapping ErrUsage.
func ParseOperation(args []string) (Operation, error) {
	if len(args) == 0 {
		return PrintAll{}, nil
	}

	switch args[0] {
	case VerbAdd:
		if len(args) != 3 {
			return nil, fmt.Errorf("%w: operation '%s' expects 2 arguments, got %d",
				ErrUsage, VerbAdd, len(args)-1)
		}
		return Add{Key: args[1], Value: args[2]}, nil
	case VerbRemove:
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: operation '%s' expects 1 argument, got %d",
				ErrUsage, VerbRemove, len(args)-1)
		}
		return Remove{Key: args[1]}, nil
	}

	if len(args) > 1 {
		return nil, fmt.Errorf("%w: operation 'print' expects 0 or 1 arguments, got %d",
			ErrUsage, len(args))
	}
	return PrintKey{Key: args[0]}, nil
}
