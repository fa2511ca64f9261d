package clang

// Opaque handles returned by libclang. Each wraps a single C pointer.
type (
	// CXIndex is a context for a set of translation units.
	CXIndex uintptr
	// CXTranslationUnit is a single parsed translation unit.
	CXTranslationUnit uintptr
	// CXFile is a file tracked by a translation unit.
	CXFile uintptr
	// CXDiagnostic is a single diagnostic produced while parsing.
	CXDiagnostic uintptr
	// CXDiagnosticSet is an ordered collection of diagnostics.
	CXDiagnosticSet uintptr
	// CXEvalResult is the outcome of evaluating a cursor's expression.
	CXEvalResult uintptr
	// CXTargetInfo describes the target of a translation unit.
	CXTargetInfo uintptr
	// CXModule is a module imported by a translation unit.
	CXModule uintptr
	// CXPrintingPolicy controls clang_getCursorPrettyPrinted output.
	CXPrintingPolicy uintptr
)

// CXString is the string carrier used by libclang. Read its contents via
// the clang_getCString entry and release every instance you are handed
// with clang_disposeString.
type CXString struct {
	Data         uintptr
	PrivateFlags uint32
}

// CXCursor is a reference into the AST of a translation unit. Layout
// mirrors the C struct; instances are passed and returned by value.
type CXCursor struct {
	Kind  CXCursorKind
	XData int32
	Data  [3]uintptr
}

// CXType is the type of an AST element. Passed and returned by value.
type CXType struct {
	Kind CXTypeKind
	Data [2]uintptr
}

// CXSourceLocation is a position in a translation unit.
type CXSourceLocation struct {
	PtrData [2]uintptr
	IntData uint32
}

// CXSourceRange is a half-open source extent.
type CXSourceRange struct {
	PtrData      [2]uintptr
	BeginIntData uint32
	EndIntData   uint32
}

// CXToken is a single preprocessing token.
type CXToken struct {
	IntData [4]uint32
	PtrData uintptr
}

// Enumerations appearing in registered signatures. Their value sets
// belong to libclang; only the handful of values this package interprets
// itself are declared here.
type (
	CXErrorCode              int32
	CXCursorKind             uint32
	CXTypeKind               uint32
	CXDiagnosticSeverity     int32
	CXTokenKind              uint32
	CXLinkageKind            int32
	CXVisibilityKind         int32
	CXAvailabilityKind       int32
	CXAccessSpecifier        int32
	CXLanguageKind           int32
	CXTLSKind                int32
	CXStorageClass           int32
	CXCallingConv            int32
	CXRefQualifierKind       int32
	CXTemplateArgumentKind   int32
	CXEvalResultKind         int32
	CXTypeNullabilityKind    int32
	CXPrintingPolicyProperty int32
	CXUnaryOperatorKind      int32
	CXBinaryOperatorKind     int32
	CXSaveError              int32
)

// CXErrorCode values shared by the fallible entry points.
const (
	CXErrorSuccess          CXErrorCode = 0
	CXErrorFailure          CXErrorCode = 1
	CXErrorCrashed          CXErrorCode = 2
	CXErrorInvalidArguments CXErrorCode = 3
	CXErrorASTReadError     CXErrorCode = 4
)

// CXDiagnosticSeverity values.
const (
	CXDiagnosticIgnored CXDiagnosticSeverity = iota
	CXDiagnosticNote
	CXDiagnosticWarning
	CXDiagnosticError
	CXDiagnosticFatal
)
