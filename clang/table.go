package clang

import (
	"fmt"
	"reflect"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"
)

// EntryStatus describes how one registry entry fared at bind time.
type EntryStatus int

const (
	// EntryAvailable means the symbol resolved and its field is callable.
	EntryAvailable EntryStatus = iota
	// EntryMissing means the loaded image does not export the symbol.
	EntryMissing
	// EntryGated means the entry needs a newer API level than the table
	// was bound at; the symbol was never looked up.
	EntryGated
)

func (s EntryStatus) String() string {
	switch s {
	case EntryAvailable:
		return "available"
	case EntryMissing:
		return "missing"
	case EntryGated:
		return "gated"
	default:
		return fmt.Sprintf("EntryStatus(%d)", int(s))
	}
}

// Entry reports the bind outcome for one registry entry.
type Entry struct {
	// Name is the exported symbol name, for example "clang_createIndex".
	Name string
	// Min is the API level that introduced the entry.
	Min APILevel
	// Status records whether the entry resolved when the table was bound.
	Status EntryStatus
}

// FunctionTable holds the typed entry points resolved against one loaded
// libclang image. bind fills it once and it is never mutated afterwards,
// so concurrent readers need no locking. Fields whose symbol did not
// resolve are not nil: calling one panics with a message naming the
// symbol, so a typo or an old installation fails loudly instead of
// jumping through a garbage pointer. Probe IsAvailable before calling
// anything gated or optionally exported.
//
// C strings cross the boundary as uintptr; build them with CString and
// read returned ones with GoString. Out-parameters and arrays cross as
// uintptr too. A zero uintptr is a C NULL.
type FunctionTable struct {
	level   APILevel
	entries []Entry
	index   map[string]int

	// Strings and global utilities.
	GetCString          func(CXString) uintptr
	DisposeString       func(CXString)
	DisposeStringSet    func(uintptr)
	GetClangVersion     func() CXString
	ToggleCrashRecovery func(uint32)
	EnableStackTraces   func()
	ExecuteOnThread     func(uintptr, uintptr, uint32)

	// Index lifecycle.
	CreateIndex                          func(int32, int32) CXIndex
	DisposeIndex                         func(CXIndex)
	IndexGetGlobalOptions                func(CXIndex) uint32
	IndexSetGlobalOptions                func(CXIndex, uint32)
	IndexSetInvocationEmissionPathOption func(CXIndex, uintptr)

	// Translation units.
	CreateTranslationUnit                func(CXIndex, uintptr) CXTranslationUnit
	CreateTranslationUnit2               func(CXIndex, uintptr, uintptr) CXErrorCode
	CreateTranslationUnitFromSourceFile  func(CXIndex, uintptr, int32, uintptr, uint32, uintptr) CXTranslationUnit
	ParseTranslationUnit                 func(CXIndex, uintptr, uintptr, int32, uintptr, uint32, uint32) CXTranslationUnit
	ParseTranslationUnit2                func(CXIndex, uintptr, uintptr, int32, uintptr, uint32, uint32, uintptr) CXErrorCode
	ParseTranslationUnit2FullArgv        func(CXIndex, uintptr, uintptr, int32, uintptr, uint32, uint32, uintptr) CXErrorCode
	DefaultEditingTranslationUnitOptions func() uint32
	DefaultSaveOptions                   func(CXTranslationUnit) uint32
	SaveTranslationUnit                  func(CXTranslationUnit, uintptr, uint32) CXSaveError
	SuspendTranslationUnit               func(CXTranslationUnit) uint32
	DefaultReparseOptions                func(CXTranslationUnit) uint32
	ReparseTranslationUnit               func(CXTranslationUnit, uint32, uintptr, uint32) int32
	DisposeTranslationUnit               func(CXTranslationUnit)
	GetTranslationUnitSpelling           func(CXTranslationUnit) CXString
	GetTranslationUnitCursor             func(CXTranslationUnit) CXCursor

	// Target introspection.
	GetTranslationUnitTargetInfo func(CXTranslationUnit) CXTargetInfo
	TargetInfoGetTriple          func(CXTargetInfo) CXString
	TargetInfoGetPointerWidth    func(CXTargetInfo) int32
	TargetInfoDispose            func(CXTargetInfo)

	// Files.
	GetFile                      func(CXTranslationUnit, uintptr) CXFile
	GetFileName                  func(CXFile) CXString
	GetFileTime                  func(CXFile) int64
	GetFileUniqueID              func(CXFile, uintptr) int32
	GetFileContents              func(CXTranslationUnit, CXFile, uintptr) uintptr
	FileIsEqual                  func(CXFile, CXFile) int32
	FileTryGetRealPathName       func(CXFile) CXString
	IsFileMultipleIncludeGuarded func(CXTranslationUnit, CXFile) uint32
	GetInclusions                func(CXTranslationUnit, uintptr, uintptr)
	GetModuleForFile             func(CXTranslationUnit, CXFile) CXModule

	// Modules.
	CursorGetModule             func(CXCursor) CXModule
	ModuleGetASTFile            func(CXModule) CXFile
	ModuleGetParent             func(CXModule) CXModule
	ModuleGetName               func(CXModule) CXString
	ModuleGetFullName           func(CXModule) CXString
	ModuleIsSystem              func(CXModule) int32
	ModuleGetNumTopLevelHeaders func(CXTranslationUnit, CXModule) uint32
	ModuleGetTopLevelHeader     func(CXTranslationUnit, CXModule, uint32) CXFile

	// Source locations and extents.
	GetNullLocation          func() CXSourceLocation
	EqualLocations           func(CXSourceLocation, CXSourceLocation) uint32
	GetLocation              func(CXTranslationUnit, CXFile, uint32, uint32) CXSourceLocation
	GetLocationForOffset     func(CXTranslationUnit, CXFile, uint32) CXSourceLocation
	LocationIsInSystemHeader func(CXSourceLocation) int32
	LocationIsFromMainFile   func(CXSourceLocation) int32
	GetExpansionLocation     func(CXSourceLocation, uintptr, uintptr, uintptr, uintptr)
	GetPresumedLocation      func(CXSourceLocation, uintptr, uintptr, uintptr)
	GetSpellingLocation      func(CXSourceLocation, uintptr, uintptr, uintptr, uintptr)
	GetFileLocation          func(CXSourceLocation, uintptr, uintptr, uintptr, uintptr)
	GetNullRange             func() CXSourceRange
	GetRange                 func(CXSourceLocation, CXSourceLocation) CXSourceRange
	EqualRanges              func(CXSourceRange, CXSourceRange) uint32
	RangeIsNull              func(CXSourceRange) int32
	GetRangeStart            func(CXSourceRange) CXSourceLocation
	GetRangeEnd              func(CXSourceRange) CXSourceLocation
	GetSkippedRanges         func(CXTranslationUnit, CXFile) uintptr
	GetAllSkippedRanges      func(CXTranslationUnit) uintptr
	DisposeSourceRangeList   func(uintptr)

	// Diagnostics.
	GetNumDiagnostics               func(CXTranslationUnit) uint32
	GetDiagnostic                   func(CXTranslationUnit, uint32) CXDiagnostic
	GetDiagnosticSetFromTU          func(CXTranslationUnit) CXDiagnosticSet
	GetNumDiagnosticsInSet          func(CXDiagnosticSet) uint32
	GetDiagnosticInSet              func(CXDiagnosticSet, uint32) CXDiagnostic
	GetChildDiagnostics             func(CXDiagnostic) CXDiagnosticSet
	DisposeDiagnostic               func(CXDiagnostic)
	DisposeDiagnosticSet            func(CXDiagnosticSet)
	LoadDiagnostics                 func(uintptr, uintptr, uintptr) CXDiagnosticSet
	FormatDiagnostic                func(CXDiagnostic, uint32) CXString
	DefaultDiagnosticDisplayOptions func() uint32
	GetDiagnosticSeverity           func(CXDiagnostic) CXDiagnosticSeverity
	GetDiagnosticLocation           func(CXDiagnostic) CXSourceLocation
	GetDiagnosticSpelling           func(CXDiagnostic) CXString
	GetDiagnosticOption             func(CXDiagnostic, uintptr) CXString
	GetDiagnosticCategory           func(CXDiagnostic) uint32
	GetDiagnosticCategoryText       func(CXDiagnostic) CXString
	GetDiagnosticNumRanges          func(CXDiagnostic) uint32
	GetDiagnosticRange              func(CXDiagnostic, uint32) CXSourceRange
	GetDiagnosticNumFixIts          func(CXDiagnostic) uint32
	GetDiagnosticFixIt              func(CXDiagnostic, uint32, uintptr) CXString

	// Cursors.
	GetNullCursor                   func() CXCursor
	EqualCursors                    func(CXCursor, CXCursor) uint32
	CursorIsNull                    func(CXCursor) int32
	HashCursor                      func(CXCursor) uint32
	GetCursorKind                   func(CXCursor) CXCursorKind
	IsDeclaration                   func(CXCursorKind) uint32
	IsInvalidDeclaration            func(CXCursor) uint32
	IsReference                     func(CXCursorKind) uint32
	IsExpression                    func(CXCursorKind) uint32
	IsStatement                     func(CXCursorKind) uint32
	IsAttribute                     func(CXCursorKind) uint32
	CursorHasAttrs                  func(CXCursor) uint32
	IsInvalid                       func(CXCursorKind) uint32
	IsTranslationUnit               func(CXCursorKind) uint32
	IsPreprocessing                 func(CXCursorKind) uint32
	IsUnexposed                     func(CXCursorKind) uint32
	GetCursorLinkage                func(CXCursor) CXLinkageKind
	GetCursorVisibility             func(CXCursor) CXVisibilityKind
	GetCursorAvailability           func(CXCursor) CXAvailabilityKind
	GetCursorLanguage               func(CXCursor) CXLanguageKind
	GetCursorTLSKind                func(CXCursor) CXTLSKind
	CursorGetTranslationUnit        func(CXCursor) CXTranslationUnit
	GetCursorSemanticParent         func(CXCursor) CXCursor
	GetCursorLexicalParent          func(CXCursor) CXCursor
	GetOverriddenCursors            func(CXCursor, uintptr, uintptr)
	DisposeOverriddenCursors        func(uintptr)
	GetIncludedFile                 func(CXCursor) CXFile
	GetCursor                       func(CXTranslationUnit, CXSourceLocation) CXCursor
	GetCursorLocation               func(CXCursor) CXSourceLocation
	GetCursorExtent                 func(CXCursor) CXSourceRange
	VisitChildren                   func(CXCursor, uintptr, uintptr) uint32
	GetCursorUSR                    func(CXCursor) CXString
	GetCursorSpelling               func(CXCursor) CXString
	CursorGetSpellingNameRange      func(CXCursor, uint32, uint32) CXSourceRange
	GetCursorDisplayName            func(CXCursor) CXString
	GetCursorReferenced             func(CXCursor) CXCursor
	GetCursorDefinition             func(CXCursor) CXCursor
	IsCursorDefinition              func(CXCursor) uint32
	GetCanonicalCursor              func(CXCursor) CXCursor
	CursorIsVariadic                func(CXCursor) uint32
	CursorIsExternalSymbol          func(CXCursor, uintptr, uintptr, uintptr) uint32
	CursorGetCommentRange           func(CXCursor) CXSourceRange
	CursorGetRawCommentText         func(CXCursor) CXString
	CursorGetBriefCommentText       func(CXCursor) CXString
	CursorGetMangling               func(CXCursor) CXString
	CursorGetCXXManglings           func(CXCursor) uintptr
	CursorGetObjCManglings          func(CXCursor) uintptr
	GetNumOverloadedDecls           func(CXCursor) uint32
	GetOverloadedDecl               func(CXCursor, uint32) CXCursor
	CursorGetVarDeclInitializer     func(CXCursor) CXCursor
	CursorHasVarDeclGlobalStorage   func(CXCursor) int32
	CursorHasVarDeclExternalStorage func(CXCursor) int32

	// Declaration attributes.
	GetCursorPlatformAvailability          func(CXCursor, uintptr, uintptr, uintptr, uintptr, uintptr, int32) int32
	DisposeCXPlatformAvailability          func(uintptr)
	CursorGetStorageClass                  func(CXCursor) CXStorageClass
	CursorGetOffsetOfField                 func(CXCursor) int64
	CursorIsAnonymous                      func(CXCursor) uint32
	CursorIsAnonymousRecordDecl            func(CXCursor) uint32
	CursorIsInlineNamespace                func(CXCursor) uint32
	CursorIsBitField                       func(CXCursor) uint32
	CursorIsMacroFunctionLike              func(CXCursor) uint32
	CursorIsMacroBuiltin                   func(CXCursor) uint32
	CursorIsFunctionInlined                func(CXCursor) uint32
	IsVirtualBase                          func(CXCursor) uint32
	GetCXXAccessSpecifier                  func(CXCursor) CXAccessSpecifier
	CursorGetNumArguments                  func(CXCursor) int32
	CursorGetArgument                      func(CXCursor, uint32) CXCursor
	CursorGetNumTemplateArguments          func(CXCursor) int32
	CursorGetTemplateArgumentKind          func(CXCursor, uint32) CXTemplateArgumentKind
	CursorGetTemplateArgumentType          func(CXCursor, uint32) CXType
	CursorGetTemplateArgumentValue         func(CXCursor, uint32) int64
	CursorGetTemplateArgumentUnsignedValue func(CXCursor, uint32) uint64
	GetTemplateCursorKind                  func(CXCursor) CXCursorKind
	GetSpecializedCursorTemplate           func(CXCursor) CXCursor
	GetCursorReferenceNameRange            func(CXCursor, uint32, uint32) CXSourceRange

	// C++ introspection.
	CXXConstructorIsConvertingConstructor func(CXCursor) uint32
	CXXConstructorIsCopyConstructor       func(CXCursor) uint32
	CXXConstructorIsDefaultConstructor    func(CXCursor) uint32
	CXXConstructorIsMoveConstructor       func(CXCursor) uint32
	CXXFieldIsMutable                     func(CXCursor) uint32
	CXXMethodIsConst                      func(CXCursor) uint32
	CXXMethodIsDefaulted                  func(CXCursor) uint32
	CXXMethodIsDeleted                    func(CXCursor) uint32
	CXXMethodIsCopyAssignmentOperator     func(CXCursor) uint32
	CXXMethodIsMoveAssignmentOperator     func(CXCursor) uint32
	CXXMethodIsExplicit                   func(CXCursor) uint32
	CXXMethodIsPureVirtual                func(CXCursor) uint32
	CXXMethodIsStatic                     func(CXCursor) uint32
	CXXMethodIsVirtual                    func(CXCursor) uint32
	CXXRecordIsAbstract                   func(CXCursor) uint32
	EnumDeclIsScoped                      func(CXCursor) uint32
	GetCursorExceptionSpecificationType   func(CXCursor) int32
	GetCursorUnaryOperatorKind            func(CXCursor) CXUnaryOperatorKind
	GetCursorBinaryOperatorKind           func(CXCursor) CXBinaryOperatorKind

	// Types.
	GetCursorType                    func(CXCursor) CXType
	GetTypeSpelling                  func(CXType) CXString
	GetTypedefDeclUnderlyingType     func(CXCursor) CXType
	GetEnumDeclIntegerType           func(CXCursor) CXType
	GetEnumConstantDeclValue         func(CXCursor) int64
	GetEnumConstantDeclUnsignedValue func(CXCursor) uint64
	GetFieldDeclBitWidth             func(CXCursor) int32
	EqualTypes                       func(CXType, CXType) uint32
	GetCanonicalType                 func(CXType) CXType
	IsConstQualifiedType             func(CXType) uint32
	IsVolatileQualifiedType          func(CXType) uint32
	IsRestrictQualifiedType          func(CXType) uint32
	GetAddressSpace                  func(CXType) uint32
	GetTypedefName                   func(CXType) CXString
	GetPointeeType                   func(CXType) CXType
	GetUnqualifiedType               func(CXType) CXType
	GetNonReferenceType              func(CXType) CXType
	GetTypeDeclaration               func(CXType) CXCursor
	GetTypeKindSpelling              func(CXTypeKind) CXString
	GetFunctionTypeCallingConv       func(CXType) CXCallingConv
	GetResultType                    func(CXType) CXType
	GetExceptionSpecificationType    func(CXType) int32
	GetNumArgTypes                   func(CXType) int32
	GetArgType                       func(CXType, uint32) CXType
	IsFunctionTypeVariadic           func(CXType) uint32
	GetCursorResultType              func(CXCursor) CXType
	IsPODType                        func(CXType) uint32
	GetElementType                   func(CXType) CXType
	GetNumElements                   func(CXType) int64
	GetArrayElementType              func(CXType) CXType
	GetArraySize                     func(CXType) int64
	TypeGetNamedType                 func(CXType) CXType
	TypeIsTransparentTagTypedef      func(CXType) uint32
	TypeGetNullability               func(CXType) CXTypeNullabilityKind
	TypeGetAlignOf                   func(CXType) int64
	TypeGetClassType                 func(CXType) CXType
	TypeGetSizeOf                    func(CXType) int64
	TypeGetOffsetOf                  func(CXType, uintptr) int64
	TypeGetModifiedType              func(CXType) CXType
	TypeGetValueType                 func(CXType) CXType
	TypeGetNumTemplateArguments      func(CXType) int32
	TypeGetTemplateArgumentAsType    func(CXType, uint32) CXType
	TypeGetCXXRefQualifier           func(CXType) CXRefQualifierKind

	// Pretty printing.
	GetCursorPrintingPolicy   func(CXCursor) CXPrintingPolicy
	PrintingPolicyGetProperty func(CXPrintingPolicy, CXPrintingPolicyProperty) uint32
	PrintingPolicySetProperty func(CXPrintingPolicy, CXPrintingPolicyProperty, uint32)
	PrintingPolicyDispose     func(CXPrintingPolicy)
	GetCursorPrettyPrinted    func(CXCursor, CXPrintingPolicy) CXString

	// Tokens.
	GetToken         func(CXTranslationUnit, CXSourceLocation) uintptr
	GetTokenKind     func(CXToken) CXTokenKind
	GetTokenSpelling func(CXTranslationUnit, CXToken) CXString
	GetTokenLocation func(CXTranslationUnit, CXToken) CXSourceLocation
	GetTokenExtent   func(CXTranslationUnit, CXToken) CXSourceRange
	Tokenize         func(CXTranslationUnit, CXSourceRange, uintptr, uintptr)
	AnnotateTokens   func(CXTranslationUnit, uintptr, uint32, uintptr)
	DisposeTokens    func(CXTranslationUnit, uintptr, uint32)

	// Expression evaluation.
	CursorEvaluate          func(CXCursor) CXEvalResult
	EvalResultGetKind       func(CXEvalResult) CXEvalResultKind
	EvalResultGetAsInt      func(CXEvalResult) int32
	EvalResultGetAsLongLong func(CXEvalResult) int64
	EvalResultIsUnsignedInt func(CXEvalResult) uint32
	EvalResultGetAsUnsigned func(CXEvalResult) uint64
	EvalResultGetAsDouble   func(CXEvalResult) float64
	EvalResultGetAsStr      func(CXEvalResult) uintptr
	EvalResultDispose       func(CXEvalResult)
}

// bind resolves the symbol registry against img and returns the function
// table for one loaded library. Entries above level are never looked up.
// Entries the image does not export are logged and kept callable via a
// panicking stub, so absence surfaces by name at the call site instead
// of as a wild jump.
func bind(img image, level APILevel, logger logrus.FieldLogger) *FunctionTable {
	t := &FunctionTable{level: level}
	reg := t.registry()
	t.entries = make([]Entry, 0, len(reg))
	t.index = make(map[string]int, len(reg))

	available := 0
	for _, e := range reg {
		status := EntryAvailable
		switch addr, err := resolveEntry(img, e, level); {
		case err == errEntryGated:
			installStub(e.fn, fmt.Sprintf(
				"clang: %s requires clang %s or newer but the table was bound at API level %s; check IsAvailable(%q) before calling it",
				e.name, e.min, level, e.name))
			status = EntryGated
		case err != nil || addr == 0:
			logger.WithField("symbol", e.name).Debug("symbol not exported by loaded library")
			installStub(e.fn, fmt.Sprintf(
				"clang: %s is not exported by the loaded libclang; check IsAvailable(%q) before calling it",
				e.name, e.name))
			status = EntryMissing
		default:
			purego.RegisterFunc(e.fn, addr)
			available++
		}

		t.index[e.name] = len(t.entries)
		t.entries = append(t.entries, Entry{Name: e.name, Min: e.min, Status: status})
	}

	logger.WithFields(logrus.Fields{
		"level":     level.String(),
		"available": available,
		"absent":    len(reg) - available,
	}).Debug("bound libclang function table")
	return t
}

// errEntryGated is the in-band resolveEntry result for entries filtered
// out by the configured API level.
var errEntryGated = fmt.Errorf("entry gated by API level")

func resolveEntry(img image, e registryEntry, level APILevel) (uintptr, error) {
	if e.min > level {
		return 0, errEntryGated
	}
	return img.symbol(e.name)
}

// installStub fills the function field behind fn with an implementation
// that panics with message. Every field stays callable; an absent entry
// reports its own name rather than crashing through a nil pointer.
func installStub(fn any, message string) {
	field := reflect.ValueOf(fn).Elem()
	field.Set(reflect.MakeFunc(field.Type(), func([]reflect.Value) []reflect.Value {
		panic(message)
	}))
}

// Level returns the API level the table was bound at.
func (t *FunctionTable) Level() APILevel { return t.level }

// IsAvailable reports whether the named symbol resolved at bind time.
// False means calling the matching field will panic: either the entry is
// gated below the bound API level or the library does not export it.
func (t *FunctionTable) IsAvailable(name string) bool {
	i, ok := t.index[name]
	return ok && t.entries[i].Status == EntryAvailable
}

// Entry returns the bind outcome for the named symbol and whether the
// symbol is part of the registry at all.
func (t *FunctionTable) Entry(name string) (Entry, bool) {
	i, ok := t.index[name]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Entries returns the bind outcome of every registry entry in registry
// order. The slice is a copy; callers may sort or filter it freely.
func (t *FunctionTable) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// ConsumeCXString copies s into a Go string and disposes s. Use it for
// every CXString the library hands over, or the C-side buffer leaks.
func (t *FunctionTable) ConsumeCXString(s CXString) string {
	defer t.DisposeString(s)
	return GoString(t.GetCString(s))
}
