// Package errors provides structured error types for the actor SDK.
//
// Errors are categorized by Capability (which facade or layer reported the
// failure) and Kind (error category). Handlers match on Kind with errors.Is
// instead of inspecting collaborator error types:
//
//	if errors.Is(err, &sdkerrors.Error{Kind: sdkerrors.KindBadDispatch}) {
//	    // unknown operation
//	}
//
// Use the Builder for structured construction:
//
//	err := errors.New(errors.CapKeyValue, errors.KindHost).
//		Op("Get").
//		Cause(cause).
//		Build()
//
// Or the convenience constructors for common patterns:
//
//	err := errors.Host(errors.CapKeyValue, "Get", cause)
//	err := errors.BadDispatch("UnknownOp")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
