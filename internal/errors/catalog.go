package errors

import "fmt"

// This file centralizes the exact wording spec.md prescribes for each
// error case (§4.4, §4.5, §4.7, §8), keeping user-facing message text
// in one place rather than scattered fmt.Sprintf calls at every
// evaluator call site.

func MsgIdentifierNotFound(name string) string {
	return fmt.Sprintf("Identifier '%s' not found", name)
}

func MsgImmutableOrUndeclared(name string) string {
	return fmt.Sprintf("Variable '%s' is immutable or doesn't exist", name)
}

func MsgDuplicateDeclaration(name string) string {
	return fmt.Sprintf("'%s' is already declared in this scope", name)
}

func MsgUnableToInvoke(typeName string) string {
	return fmt.Sprintf("Unable to invoke %s", typeName)
}

func MsgArityMismatch(expected, got int) string {
	return fmt.Sprintf("Expected %d arguments, got %d", expected, got)
}

func MsgIndexOutOfRange() string {
	return "Index out of range"
}

func MsgKeyNotFound() string {
	return "Key not found"
}

func MsgDuplicateKey() string {
	return "Duplicate key"
}

func MsgCannotIndex(typeName string) string {
	return fmt.Sprintf("Cannot use index operator on %s", typeName)
}

func MsgFunctionDidntReturn() string {
	return "Function didn't return a value"
}

func MsgAssertFailed() string {
	return "Assert failed"
}

func MsgDivisionByZero() string {
	return "Division by zero"
}

func MsgConditionNotBool() string {
	return "condition must be a bool"
}

func MsgOperandNotBool() string {
	return "operand must be a bool"
}

func MsgBadOperandTypes(op, left, right string) string {
	return fmt.Sprintf("operator %s is not defined for %s and %s", op, left, right)
}
