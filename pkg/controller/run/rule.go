package run

// ruleKind enumerates the rules with bespoke file-level formatting.
// Matching on the kind rather than the raw string keeps the fallback
// branch exhaustive: anything not listed here renders the generic
// "needs custom handling" block.
type ruleKind int

const (
	ruleUnknown ruleKind = iota
	ruleImportCycles
)

func kindOfRule(rule string) ruleKind {
	if rule == "reportImportCycles" {
		return ruleImportCycles
	}
	return ruleUnknown
}

// ruleDescriptions maps pyright rule identifiers to the short flavor text
// appended after the caret indicator. The texts are pyright's own rule
// documentation trimmed of boilerplate. Rules without an entry render the
// bare rule name.
var ruleDescriptions = map[string]string{
	"reportGeneralTypeIssues":            "general type inconsistencies, unsupported operations, argument/parameter mismatches, etc.",
	"reportPropertyTypeMismatch":         "properties where the setter value type is not assignable to the getter return type.",
	"reportFunctionMemberAccess":         "non-standard member accesses for functions.",
	"reportMissingImports":               "imports that have no corresponding imported python file or type stub file.",
	"reportMissingModuleSource":          "imports that have no corresponding source file.",
	"reportInvalidTypeForm":              "type annotations that use invalid type expression forms or are semantically invalid.",
	"reportMissingTypeStubs":             "imports that have no corresponding type stub file.",
	"reportImportCycles":                 "cyclical import chains.",
	"reportUnusedImport":                 "an imported symbol that is not referenced within that file.",
	"reportUnusedClass":                  "a class with a private name that is not accessed.",
	"reportUnusedFunction":               "a function or method with a private name that is not accessed.",
	"reportUnusedVariable":               "a variable that is not accessed.",
	"reportDuplicateImport":              "an imported symbol or module that is imported more than once.",
	"reportAbstractUsage":                "the attempted instantiate an abstract or protocol class or use of an abstract method.",
	"reportArgumentType":                 "argument type incompatibilities when evaluating a call expression.",
	"reportAssertTypeFailure":            "a type mismatch detected by the `typing.assert_type` call.",
	"reportAssignmentType":               "assignment type incompatibility.",
	"reportAttributeAccessIssue":         "attribute accesses.",
	"reportCallIssue":                    "call expressions and arguments passed to a call target.",
	"reportInconsistentOverload":         "an overloaded function with overload signatures inconsistent with each other or with the implementation.",
	"reportIndexIssue":                   "index operations and expressions.",
	"reportInvalidTypeArguments":         "invalid type argument usage.",
	"reportNoOverloadImplementation":     "an overloaded function or method without an implementation.",
	"reportOperatorIssue":                "the use of unary or binary operators.",
	"reportOptionalSubscript":            "an attempt to subscript (index) a variable with an Optional type.",
	"reportOptionalMemberAccess":         "an attempt to access a member of a variable with an Optional type.",
	"reportOptionalCall":                 "an attempt to call a variable with an Optional type.",
	"reportOptionalIterable":             "an attempt to use an Optional type as an iterable value.",
	"reportOptionalContextManager":       "an attempt to use an Optional type as a context manager.",
	"reportOptionalOperand":              "an attempt to use an Optional type as an operand to a unary or binary operator.",
	"reportRedeclaration":                "a symbol that has more than one type declaration.",
	"reportReturnType":                   "function return type compatibility.",
	"reportTypedDictNotRequiredAccess":   "an attempt to access a non-required TypedDict field without checking whether it is present.",
	"reportPrivateUsage":                 "incorrect usage of private or protected variables or functions.",
	"reportPrivateImportUsage":           "use of a symbol from a py.typed module that is not meant to be exported.",
	"reportConstantRedefinition":         "attempts to redefine variables whose names are all-caps with underscores and numerals.",
	"reportDeprecated":                   "use of a class or function that has been marked as deprecated.",
	"reportIncompatibleMethodOverride":   "methods that override a method of the same name in a base class in an incompatible manner.",
	"reportIncompatibleVariableOverride": "class variable declarations that override a base class symbol with an incompatible type.",
	"reportOverlappingOverload":          "function overloads that overlap in signature and obscure each other or have incompatible return types.",
	"reportPossiblyUnboundVariable":      "variables that are possibly unbound on some code paths.",
	"reportInvalidStringEscapeSequence":  "invalid escape sequences used within string literals.",
	"reportUnknownParameterType":         "input or return parameters for functions or methods that have an unknown type.",
	"reportUnknownArgumentType":          "call arguments for functions or methods that have an unknown type.",
	"reportUnknownVariableType":          "variables that have an unknown type.",
	"reportUnknownMemberType":            "class or instance variables that have an unknown type.",
	"reportMissingParameterType":         "input parameters for functions or methods that are missing a type annotation.",
	"reportMissingTypeArgument":          "a generic class used without providing explicit or implicit type arguments.",
	"reportUnnecessaryIsInstance":        "isinstance or issubclass calls where the result is statically determined to be always true or always false.",
	"reportUnnecessaryCast":              "cast calls that are statically determined to be unnecessary.",
	"reportUnnecessaryComparison":        "comparisons or conditional expressions that are statically determined to always evaluate to False or True.",
	"reportUnnecessaryContains":          "`in` operations that are statically determined to always evaluate to False or True.",
	"reportSelfClsParameterName":         "a missing or misnamed self parameter in instance methods and cls parameter in class methods.",
	"reportUndefinedVariable":            "undefined variables.",
	"reportUnboundVariable":              "unbound variables.",
	"reportUnhashable":                   "the use of an unhashable object in a container that requires hashability.",
	"reportUnusedCallResult":             "call statements whose return value is not used in any way and is not None.",
	"reportUnusedCoroutine":              "call statements whose return value is a Coroutine and is not used in any way.",
	"reportUnusedExpression":             "simple expressions whose results are not used in any way.",
	"reportUnnecessaryTypeIgnoreComment": "a type ignore comment that would have no effect if removed.",
	"reportMatchNotExhaustive":           "a match statement that does not exhaustively match all potential types of the target expression.",
	"reportImplicitOverride":             "overridden methods in a class that are missing an explicit @override decorator.",
	"reportShadowedImports":              "files that are overriding a module in the stdlib.",
}

func ruleDescription(rule string) string {
	return ruleDescriptions[rule]
}
