package clang

// registryEntry pairs one exported symbol with the FunctionTable field it
// binds and the clang release that introduced it.
type registryEntry struct {
	name string
	min  APILevel
	fn   any // pointer to the matching FunctionTable field
}

// registry enumerates every entry point this package binds, in the order
// the fields appear on FunctionTable. Adding a symbol means adding a
// typed field and one row here; bind, availability reporting and the
// panic stubs pick it up from the row alone.
func (t *FunctionTable) registry() []registryEntry {
	return []registryEntry{
		// Strings and global utilities.
		{"clang_getCString", Level3_5, &t.GetCString},
		{"clang_disposeString", Level3_5, &t.DisposeString},
		{"clang_disposeStringSet", Level3_8, &t.DisposeStringSet},
		{"clang_getClangVersion", Level3_5, &t.GetClangVersion},
		{"clang_toggleCrashRecovery", Level3_5, &t.ToggleCrashRecovery},
		{"clang_enableStackTraces", Level3_5, &t.EnableStackTraces},
		{"clang_executeOnThread", Level3_5, &t.ExecuteOnThread},

		// Index lifecycle.
		{"clang_createIndex", Level3_5, &t.CreateIndex},
		{"clang_disposeIndex", Level3_5, &t.DisposeIndex},
		{"clang_CXIndex_getGlobalOptions", Level3_5, &t.IndexGetGlobalOptions},
		{"clang_CXIndex_setGlobalOptions", Level3_5, &t.IndexSetGlobalOptions},
		{"clang_CXIndex_setInvocationEmissionPathOption", Level6_0, &t.IndexSetInvocationEmissionPathOption},

		// Translation units.
		{"clang_createTranslationUnit", Level3_5, &t.CreateTranslationUnit},
		{"clang_createTranslationUnit2", Level3_5, &t.CreateTranslationUnit2},
		{"clang_createTranslationUnitFromSourceFile", Level3_5, &t.CreateTranslationUnitFromSourceFile},
		{"clang_parseTranslationUnit", Level3_5, &t.ParseTranslationUnit},
		{"clang_parseTranslationUnit2", Level3_5, &t.ParseTranslationUnit2},
		{"clang_parseTranslationUnit2FullArgv", Level3_8, &t.ParseTranslationUnit2FullArgv},
		{"clang_defaultEditingTranslationUnitOptions", Level3_5, &t.DefaultEditingTranslationUnitOptions},
		{"clang_defaultSaveOptions", Level3_5, &t.DefaultSaveOptions},
		{"clang_saveTranslationUnit", Level3_5, &t.SaveTranslationUnit},
		{"clang_suspendTranslationUnit", Level7_0, &t.SuspendTranslationUnit},
		{"clang_defaultReparseOptions", Level3_5, &t.DefaultReparseOptions},
		{"clang_reparseTranslationUnit", Level3_5, &t.ReparseTranslationUnit},
		{"clang_disposeTranslationUnit", Level3_5, &t.DisposeTranslationUnit},
		{"clang_getTranslationUnitSpelling", Level3_5, &t.GetTranslationUnitSpelling},
		{"clang_getTranslationUnitCursor", Level3_5, &t.GetTranslationUnitCursor},

		// Target introspection.
		{"clang_getTranslationUnitTargetInfo", Level5_0, &t.GetTranslationUnitTargetInfo},
		{"clang_TargetInfo_getTriple", Level5_0, &t.TargetInfoGetTriple},
		{"clang_TargetInfo_getPointerWidth", Level5_0, &t.TargetInfoGetPointerWidth},
		{"clang_TargetInfo_dispose", Level5_0, &t.TargetInfoDispose},

		// Files.
		{"clang_getFile", Level3_5, &t.GetFile},
		{"clang_getFileName", Level3_5, &t.GetFileName},
		{"clang_getFileTime", Level3_5, &t.GetFileTime},
		{"clang_getFileUniqueID", Level3_5, &t.GetFileUniqueID},
		{"clang_getFileContents", Level6_0, &t.GetFileContents},
		{"clang_File_isEqual", Level3_6, &t.FileIsEqual},
		{"clang_File_tryGetRealPathName", Level7_0, &t.FileTryGetRealPathName},
		{"clang_isFileMultipleIncludeGuarded", Level3_5, &t.IsFileMultipleIncludeGuarded},
		{"clang_getInclusions", Level3_5, &t.GetInclusions},
		{"clang_getModuleForFile", Level3_5, &t.GetModuleForFile},

		// Modules.
		{"clang_Cursor_getModule", Level3_5, &t.CursorGetModule},
		{"clang_Module_getASTFile", Level3_5, &t.ModuleGetASTFile},
		{"clang_Module_getParent", Level3_5, &t.ModuleGetParent},
		{"clang_Module_getName", Level3_5, &t.ModuleGetName},
		{"clang_Module_getFullName", Level3_5, &t.ModuleGetFullName},
		{"clang_Module_isSystem", Level3_5, &t.ModuleIsSystem},
		{"clang_Module_getNumTopLevelHeaders", Level3_5, &t.ModuleGetNumTopLevelHeaders},
		{"clang_Module_getTopLevelHeader", Level3_5, &t.ModuleGetTopLevelHeader},

		// Source locations and extents.
		{"clang_getNullLocation", Level3_5, &t.GetNullLocation},
		{"clang_equalLocations", Level3_5, &t.EqualLocations},
		{"clang_getLocation", Level3_5, &t.GetLocation},
		{"clang_getLocationForOffset", Level3_5, &t.GetLocationForOffset},
		{"clang_Location_isInSystemHeader", Level3_5, &t.LocationIsInSystemHeader},
		{"clang_Location_isFromMainFile", Level3_5, &t.LocationIsFromMainFile},
		{"clang_getExpansionLocation", Level3_5, &t.GetExpansionLocation},
		{"clang_getPresumedLocation", Level3_5, &t.GetPresumedLocation},
		{"clang_getSpellingLocation", Level3_5, &t.GetSpellingLocation},
		{"clang_getFileLocation", Level3_5, &t.GetFileLocation},
		{"clang_getNullRange", Level3_5, &t.GetNullRange},
		{"clang_getRange", Level3_5, &t.GetRange},
		{"clang_equalRanges", Level3_5, &t.EqualRanges},
		{"clang_Range_isNull", Level3_5, &t.RangeIsNull},
		{"clang_getRangeStart", Level3_5, &t.GetRangeStart},
		{"clang_getRangeEnd", Level3_5, &t.GetRangeEnd},
		{"clang_getSkippedRanges", Level3_5, &t.GetSkippedRanges},
		{"clang_getAllSkippedRanges", Level4_0, &t.GetAllSkippedRanges},
		{"clang_disposeSourceRangeList", Level3_5, &t.DisposeSourceRangeList},

		// Diagnostics.
		{"clang_getNumDiagnostics", Level3_5, &t.GetNumDiagnostics},
		{"clang_getDiagnostic", Level3_5, &t.GetDiagnostic},
		{"clang_getDiagnosticSetFromTU", Level3_5, &t.GetDiagnosticSetFromTU},
		{"clang_getNumDiagnosticsInSet", Level3_5, &t.GetNumDiagnosticsInSet},
		{"clang_getDiagnosticInSet", Level3_5, &t.GetDiagnosticInSet},
		{"clang_getChildDiagnostics", Level3_5, &t.GetChildDiagnostics},
		{"clang_disposeDiagnostic", Level3_5, &t.DisposeDiagnostic},
		{"clang_disposeDiagnosticSet", Level3_5, &t.DisposeDiagnosticSet},
		{"clang_loadDiagnostics", Level3_5, &t.LoadDiagnostics},
		{"clang_formatDiagnostic", Level3_5, &t.FormatDiagnostic},
		{"clang_defaultDiagnosticDisplayOptions", Level3_5, &t.DefaultDiagnosticDisplayOptions},
		{"clang_getDiagnosticSeverity", Level3_5, &t.GetDiagnosticSeverity},
		{"clang_getDiagnosticLocation", Level3_5, &t.GetDiagnosticLocation},
		{"clang_getDiagnosticSpelling", Level3_5, &t.GetDiagnosticSpelling},
		{"clang_getDiagnosticOption", Level3_5, &t.GetDiagnosticOption},
		{"clang_getDiagnosticCategory", Level3_5, &t.GetDiagnosticCategory},
		{"clang_getDiagnosticCategoryText", Level3_5, &t.GetDiagnosticCategoryText},
		{"clang_getDiagnosticNumRanges", Level3_5, &t.GetDiagnosticNumRanges},
		{"clang_getDiagnosticRange", Level3_5, &t.GetDiagnosticRange},
		{"clang_getDiagnosticNumFixIts", Level3_5, &t.GetDiagnosticNumFixIts},
		{"clang_getDiagnosticFixIt", Level3_5, &t.GetDiagnosticFixIt},

		// Cursors.
		{"clang_getNullCursor", Level3_5, &t.GetNullCursor},
		{"clang_equalCursors", Level3_5, &t.EqualCursors},
		{"clang_Cursor_isNull", Level3_5, &t.CursorIsNull},
		{"clang_hashCursor", Level3_5, &t.HashCursor},
		{"clang_getCursorKind", Level3_5, &t.GetCursorKind},
		{"clang_isDeclaration", Level3_5, &t.IsDeclaration},
		{"clang_isInvalidDeclaration", Level7_0, &t.IsInvalidDeclaration},
		{"clang_isReference", Level3_5, &t.IsReference},
		{"clang_isExpression", Level3_5, &t.IsExpression},
		{"clang_isStatement", Level3_5, &t.IsStatement},
		{"clang_isAttribute", Level3_5, &t.IsAttribute},
		{"clang_Cursor_hasAttrs", Level3_9, &t.CursorHasAttrs},
		{"clang_isInvalid", Level3_5, &t.IsInvalid},
		{"clang_isTranslationUnit", Level3_5, &t.IsTranslationUnit},
		{"clang_isPreprocessing", Level3_5, &t.IsPreprocessing},
		{"clang_isUnexposed", Level3_5, &t.IsUnexposed},
		{"clang_getCursorLinkage", Level3_5, &t.GetCursorLinkage},
		{"clang_getCursorVisibility", Level3_8, &t.GetCursorVisibility},
		{"clang_getCursorAvailability", Level3_5, &t.GetCursorAvailability},
		{"clang_getCursorLanguage", Level3_5, &t.GetCursorLanguage},
		{"clang_getCursorTLSKind", Level6_0, &t.GetCursorTLSKind},
		{"clang_Cursor_getTranslationUnit", Level3_5, &t.CursorGetTranslationUnit},
		{"clang_getCursorSemanticParent", Level3_5, &t.GetCursorSemanticParent},
		{"clang_getCursorLexicalParent", Level3_5, &t.GetCursorLexicalParent},
		{"clang_getOverriddenCursors", Level3_5, &t.GetOverriddenCursors},
		{"clang_disposeOverriddenCursors", Level3_5, &t.DisposeOverriddenCursors},
		{"clang_getIncludedFile", Level3_5, &t.GetIncludedFile},
		{"clang_getCursor", Level3_5, &t.GetCursor},
		{"clang_getCursorLocation", Level3_5, &t.GetCursorLocation},
		{"clang_getCursorExtent", Level3_5, &t.GetCursorExtent},
		{"clang_visitChildren", Level3_5, &t.VisitChildren},
		{"clang_getCursorUSR", Level3_5, &t.GetCursorUSR},
		{"clang_getCursorSpelling", Level3_5, &t.GetCursorSpelling},
		{"clang_Cursor_getSpellingNameRange", Level3_5, &t.CursorGetSpellingNameRange},
		{"clang_getCursorDisplayName", Level3_5, &t.GetCursorDisplayName},
		{"clang_getCursorReferenced", Level3_5, &t.GetCursorReferenced},
		{"clang_getCursorDefinition", Level3_5, &t.GetCursorDefinition},
		{"clang_isCursorDefinition", Level3_5, &t.IsCursorDefinition},
		{"clang_getCanonicalCursor", Level3_5, &t.GetCanonicalCursor},
		{"clang_Cursor_isVariadic", Level3_5, &t.CursorIsVariadic},
		{"clang_Cursor_isExternalSymbol", Level5_0, &t.CursorIsExternalSymbol},
		{"clang_Cursor_getCommentRange", Level3_5, &t.CursorGetCommentRange},
		{"clang_Cursor_getRawCommentText", Level3_5, &t.CursorGetRawCommentText},
		{"clang_Cursor_getBriefCommentText", Level3_5, &t.CursorGetBriefCommentText},
		{"clang_Cursor_getMangling", Level3_6, &t.CursorGetMangling},
		{"clang_Cursor_getCXXManglings", Level3_8, &t.CursorGetCXXManglings},
		{"clang_Cursor_getObjCManglings", Level6_0, &t.CursorGetObjCManglings},
		{"clang_getNumOverloadedDecls", Level3_5, &t.GetNumOverloadedDecls},
		{"clang_getOverloadedDecl", Level3_5, &t.GetOverloadedDecl},
		{"clang_Cursor_getVarDeclInitializer", Level12_0, &t.CursorGetVarDeclInitializer},
		{"clang_Cursor_hasVarDeclGlobalStorage", Level12_0, &t.CursorHasVarDeclGlobalStorage},
		{"clang_Cursor_hasVarDeclExternalStorage", Level12_0, &t.CursorHasVarDeclExternalStorage},

		// Declaration attributes.
		{"clang_getCursorPlatformAvailability", Level3_5, &t.GetCursorPlatformAvailability},
		{"clang_disposeCXPlatformAvailability", Level3_5, &t.DisposeCXPlatformAvailability},
		{"clang_Cursor_getStorageClass", Level3_6, &t.CursorGetStorageClass},
		{"clang_Cursor_getOffsetOfField", Level3_7, &t.CursorGetOffsetOfField},
		{"clang_Cursor_isAnonymous", Level3_7, &t.CursorIsAnonymous},
		{"clang_Cursor_isAnonymousRecordDecl", Level9_0, &t.CursorIsAnonymousRecordDecl},
		{"clang_Cursor_isInlineNamespace", Level9_0, &t.CursorIsInlineNamespace},
		{"clang_Cursor_isBitField", Level3_5, &t.CursorIsBitField},
		{"clang_Cursor_isMacroFunctionLike", Level3_9, &t.CursorIsMacroFunctionLike},
		{"clang_Cursor_isMacroBuiltin", Level3_9, &t.CursorIsMacroBuiltin},
		{"clang_Cursor_isFunctionInlined", Level3_9, &t.CursorIsFunctionInlined},
		{"clang_isVirtualBase", Level3_5, &t.IsVirtualBase},
		{"clang_getCXXAccessSpecifier", Level3_5, &t.GetCXXAccessSpecifier},
		{"clang_Cursor_getNumArguments", Level3_5, &t.CursorGetNumArguments},
		{"clang_Cursor_getArgument", Level3_5, &t.CursorGetArgument},
		{"clang_Cursor_getNumTemplateArguments", Level3_6, &t.CursorGetNumTemplateArguments},
		{"clang_Cursor_getTemplateArgumentKind", Level3_6, &t.CursorGetTemplateArgumentKind},
		{"clang_Cursor_getTemplateArgumentType", Level3_6, &t.CursorGetTemplateArgumentType},
		{"clang_Cursor_getTemplateArgumentValue", Level3_6, &t.CursorGetTemplateArgumentValue},
		{"clang_Cursor_getTemplateArgumentUnsignedValue", Level3_6, &t.CursorGetTemplateArgumentUnsignedValue},
		{"clang_getTemplateCursorKind", Level3_5, &t.GetTemplateCursorKind},
		{"clang_getSpecializedCursorTemplate", Level3_5, &t.GetSpecializedCursorTemplate},
		{"clang_getCursorReferenceNameRange", Level3_5, &t.GetCursorReferenceNameRange},

		// C++ introspection.
		{"clang_CXXConstructor_isConvertingConstructor", Level3_9, &t.CXXConstructorIsConvertingConstructor},
		{"clang_CXXConstructor_isCopyConstructor", Level3_9, &t.CXXConstructorIsCopyConstructor},
		{"clang_CXXConstructor_isDefaultConstructor", Level3_9, &t.CXXConstructorIsDefaultConstructor},
		{"clang_CXXConstructor_isMoveConstructor", Level3_9, &t.CXXConstructorIsMoveConstructor},
		{"clang_CXXField_isMutable", Level3_8, &t.CXXFieldIsMutable},
		{"clang_CXXMethod_isConst", Level3_5, &t.CXXMethodIsConst},
		{"clang_CXXMethod_isDefaulted", Level3_9, &t.CXXMethodIsDefaulted},
		{"clang_CXXMethod_isDeleted", Level16_0, &t.CXXMethodIsDeleted},
		{"clang_CXXMethod_isCopyAssignmentOperator", Level16_0, &t.CXXMethodIsCopyAssignmentOperator},
		{"clang_CXXMethod_isMoveAssignmentOperator", Level16_0, &t.CXXMethodIsMoveAssignmentOperator},
		{"clang_CXXMethod_isExplicit", Level17_0, &t.CXXMethodIsExplicit},
		{"clang_CXXMethod_isPureVirtual", Level3_5, &t.CXXMethodIsPureVirtual},
		{"clang_CXXMethod_isStatic", Level3_5, &t.CXXMethodIsStatic},
		{"clang_CXXMethod_isVirtual", Level3_5, &t.CXXMethodIsVirtual},
		{"clang_CXXRecord_isAbstract", Level6_0, &t.CXXRecordIsAbstract},
		{"clang_EnumDecl_isScoped", Level5_0, &t.EnumDeclIsScoped},
		{"clang_getCursorExceptionSpecificationType", Level5_0, &t.GetCursorExceptionSpecificationType},
		{"clang_getCursorUnaryOperatorKind", Level17_0, &t.GetCursorUnaryOperatorKind},
		{"clang_getCursorBinaryOperatorKind", Level17_0, &t.GetCursorBinaryOperatorKind},

		// Types.
		{"clang_getCursorType", Level3_5, &t.GetCursorType},
		{"clang_getTypeSpelling", Level3_5, &t.GetTypeSpelling},
		{"clang_getTypedefDeclUnderlyingType", Level3_5, &t.GetTypedefDeclUnderlyingType},
		{"clang_getEnumDeclIntegerType", Level3_5, &t.GetEnumDeclIntegerType},
		{"clang_getEnumConstantDeclValue", Level3_5, &t.GetEnumConstantDeclValue},
		{"clang_getEnumConstantDeclUnsignedValue", Level3_5, &t.GetEnumConstantDeclUnsignedValue},
		{"clang_getFieldDeclBitWidth", Level3_5, &t.GetFieldDeclBitWidth},
		{"clang_equalTypes", Level3_5, &t.EqualTypes},
		{"clang_getCanonicalType", Level3_5, &t.GetCanonicalType},
		{"clang_isConstQualifiedType", Level3_5, &t.IsConstQualifiedType},
		{"clang_isVolatileQualifiedType", Level3_5, &t.IsVolatileQualifiedType},
		{"clang_isRestrictQualifiedType", Level3_5, &t.IsRestrictQualifiedType},
		{"clang_getAddressSpace", Level5_0, &t.GetAddressSpace},
		{"clang_getTypedefName", Level5_0, &t.GetTypedefName},
		{"clang_getPointeeType", Level3_5, &t.GetPointeeType},
		{"clang_getUnqualifiedType", Level16_0, &t.GetUnqualifiedType},
		{"clang_getNonReferenceType", Level16_0, &t.GetNonReferenceType},
		{"clang_getTypeDeclaration", Level3_5, &t.GetTypeDeclaration},
		{"clang_getTypeKindSpelling", Level3_5, &t.GetTypeKindSpelling},
		{"clang_getFunctionTypeCallingConv", Level3_5, &t.GetFunctionTypeCallingConv},
		{"clang_getResultType", Level3_5, &t.GetResultType},
		{"clang_getExceptionSpecificationType", Level5_0, &t.GetExceptionSpecificationType},
		{"clang_getNumArgTypes", Level3_5, &t.GetNumArgTypes},
		{"clang_getArgType", Level3_5, &t.GetArgType},
		{"clang_isFunctionTypeVariadic", Level3_5, &t.IsFunctionTypeVariadic},
		{"clang_getCursorResultType", Level3_5, &t.GetCursorResultType},
		{"clang_isPODType", Level3_5, &t.IsPODType},
		{"clang_getElementType", Level3_5, &t.GetElementType},
		{"clang_getNumElements", Level3_5, &t.GetNumElements},
		{"clang_getArrayElementType", Level3_5, &t.GetArrayElementType},
		{"clang_getArraySize", Level3_5, &t.GetArraySize},
		{"clang_Type_getNamedType", Level3_9, &t.TypeGetNamedType},
		{"clang_Type_isTransparentTagTypedef", Level5_0, &t.TypeIsTransparentTagTypedef},
		{"clang_Type_getNullability", Level8_0, &t.TypeGetNullability},
		{"clang_Type_getAlignOf", Level3_5, &t.TypeGetAlignOf},
		{"clang_Type_getClassType", Level3_5, &t.TypeGetClassType},
		{"clang_Type_getSizeOf", Level3_5, &t.TypeGetSizeOf},
		{"clang_Type_getOffsetOf", Level3_5, &t.TypeGetOffsetOf},
		{"clang_Type_getModifiedType", Level8_0, &t.TypeGetModifiedType},
		{"clang_Type_getValueType", Level11_0, &t.TypeGetValueType},
		{"clang_Type_getNumTemplateArguments", Level3_7, &t.TypeGetNumTemplateArguments},
		{"clang_Type_getTemplateArgumentAsType", Level3_7, &t.TypeGetTemplateArgumentAsType},
		{"clang_Type_getCXXRefQualifier", Level3_5, &t.TypeGetCXXRefQualifier},

		// Pretty printing.
		{"clang_getCursorPrintingPolicy", Level7_0, &t.GetCursorPrintingPolicy},
		{"clang_PrintingPolicy_getProperty", Level7_0, &t.PrintingPolicyGetProperty},
		{"clang_PrintingPolicy_setProperty", Level7_0, &t.PrintingPolicySetProperty},
		{"clang_PrintingPolicy_dispose", Level7_0, &t.PrintingPolicyDispose},
		{"clang_getCursorPrettyPrinted", Level7_0, &t.GetCursorPrettyPrinted},

		// Tokens.
		{"clang_getToken", Level7_0, &t.GetToken},
		{"clang_getTokenKind", Level3_5, &t.GetTokenKind},
		{"clang_getTokenSpelling", Level3_5, &t.GetTokenSpelling},
		{"clang_getTokenLocation", Level3_5, &t.GetTokenLocation},
		{"clang_getTokenExtent", Level3_5, &t.GetTokenExtent},
		{"clang_tokenize", Level3_5, &t.Tokenize},
		{"clang_annotateTokens", Level3_5, &t.AnnotateTokens},
		{"clang_disposeTokens", Level3_5, &t.DisposeTokens},

		// Expression evaluation.
		{"clang_Cursor_Evaluate", Level3_9, &t.CursorEvaluate},
		{"clang_EvalResult_getKind", Level3_9, &t.EvalResultGetKind},
		{"clang_EvalResult_getAsInt", Level3_9, &t.EvalResultGetAsInt},
		{"clang_EvalResult_getAsLongLong", Level4_0, &t.EvalResultGetAsLongLong},
		{"clang_EvalResult_isUnsignedInt", Level4_0, &t.EvalResultIsUnsignedInt},
		{"clang_EvalResult_getAsUnsigned", Level4_0, &t.EvalResultGetAsUnsigned},
		{"clang_EvalResult_getAsDouble", Level3_9, &t.EvalResultGetAsDouble},
		{"clang_EvalResult_getAsStr", Level3_9, &t.EvalResultGetAsStr},
		{"clang_EvalResult_dispose", Level3_9, &t.EvalResultDispose},
	}
}
