// Package errors provides the coded error type shared by every layer of rpg-campaigns.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// optional metadata. The Message is what the HTTP API and the CLI show, so
// orchestrators wrap repository failures with messages such as
// "error loading characters" while the Cause keeps the driver detail for logs.
//
// # Basic Usage
//
//	err := errors.NotFoundf("character %s not found", id)
//	err := errors.InvalidArgumentf("invalid ability score: %d", score)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err != nil {
//	    return errors.Wrap(err, "error creating character")
//	}
//
// Changing the code:
//
//	if isForeignKey(err) {
//	    return errors.WrapWithCode(err, errors.CodeFailedPrecondition, "campaign still has characters")
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # HTTP
//
// ToResponse maps an error to a status code via Code.HTTPStatus and a
// ResponseBody envelope. Validation field errors are copied into the body.
//
// # Layer Guidelines
//
// Repository layer:
//   - Return NotFound, AlreadyExists and constraint errors
//   - Wrap driver errors with the statement that failed
//
// Orchestrator layer:
//   - Validate input and return InvalidArgument
//   - Check preconditions and return FailedPrecondition
//   - Log the failure and wrap with the user-facing message
//
// Handler layer:
//   - Convert with ToResponse
package errors
