package builder

import (
	"context"
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/reifylab/reify/registry"
)

// construct binds the resolved argument mapping onto the component's
// argument struct and invokes its factory. Every failure along the way is
// reported as a *ConstructionError carrying the attempted type name and
// the literal argument mapping.
func construct(ctx context.Context, ref registry.TypeReference, comp *registry.Component, args map[string]any) (any, error) {
	var argsPtr any
	if comp.NewArgs != nil {
		argsPtr = comp.NewArgs()
		if err := bindArgs(argsPtr, args); err != nil {
			return nil, &ConstructionError{Type: ref.String(), Args: args, Err: err}
		}
	} else if len(args) > 0 {
		return nil, &ConstructionError{
			Type: ref.String(),
			Args: args,
			Err:  fmt.Errorf("component accepts no arguments"),
		}
	}

	fn := reflect.ValueOf(comp.Construct)
	if fn.Kind() != reflect.Func {
		return nil, &ConstructionError{
			Type: ref.String(),
			Args: args,
			Err:  fmt.Errorf("registered constructor is %T, not a function", comp.Construct),
		}
	}

	callArgs := []reflect.Value{reflect.ValueOf(ctx)}
	if fn.Type().NumIn() > 1 {
		if argsPtr == nil {
			callArgs = append(callArgs, reflect.Zero(fn.Type().In(1)))
		} else {
			callArgs = append(callArgs, reflect.ValueOf(argsPtr))
		}
	}

	results := fn.Call(callArgs)
	obj, errResult := results[0].Interface(), results[1].Interface()
	if errResult != nil {
		return nil, &ConstructionError{Type: ref.String(), Args: args, Err: errResult.(error)}
	}
	return obj, nil
}

// bindArgs decodes the argument mapping onto the argument struct. Unknown
// keys are an error, so a misspelled argument name surfaces instead of
// being dropped. Already-constructed child objects assign directly to
// interface or matching concrete fields.
func bindArgs(argsPtr any, args map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      argsPtr,
		TagName:     "reify",
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(args)
}
