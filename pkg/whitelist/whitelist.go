// Package whitelist holds the fixed set of declarations eligible for bindings
package whitelist

import (
	"sort"
)

// Whitelist is an immutable set of foreign declaration names
type Whitelist struct {
	names map[string]struct{}
}

// New builds a whitelist from names; duplicates collapse
func New(names ...string) *Whitelist {
	w := &Whitelist{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		w.names[n] = struct{}{}
	}
	return w
}

// Contains reports whether a declaration name is eligible for generation
func (w *Whitelist) Contains(name string) bool {
	_, ok := w.names[name]
	return ok
}

// Len returns the number of distinct names
func (w *Whitelist) Len() int {
	return len(w.names)
}

// Names returns the names in sorted order
func (w *Whitelist) Names() []string {
	names := make([]string, 0, len(w.names))
	for n := range w.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Default returns the functions used by the Kantan compiler
func Default() *Whitelist {
	return New(defaultNames...)
}

var defaultNames = []string{
	// core
	"LLVMAddFunction",
	"LLVMAddGlobal",
	"LLVMAppendBasicBlockInContext",
	"LLVMArrayType",
	"LLVMBuildAdd",
	"LLVMBuildAlloca",
	"LLVMBuildAnd",
	"LLVMBuildBitCast",
	"LLVMBuildBr",
	"LLVMBuildCall",
	"LLVMBuildCondBr",
	"LLVMBuildFAdd",
	"LLVMBuildFCmp",
	"LLVMBuildFDiv",
	"LLVMBuildFMul",
	"LLVMBuildFPExt",
	"LLVMBuildFRem",
	"LLVMBuildFSub",
	"LLVMBuildFree",
	"LLVMBuildGEP",
	"LLVMBuildICmp",
	"LLVMBuildInBoundsGEP",
	"LLVMBuildIntCast",
	"LLVMBuildLoad",
	"LLVMBuildMalloc",
	"LLVMBuildMul",
	"LLVMBuildNeg",
	"LLVMBuildNot",
	"LLVMBuildOr",
	"LLVMBuildPointerCast",
	"LLVMBuildPtrToInt",
	"LLVMBuildRet",
	"LLVMBuildRetVoid",
	"LLVMBuildSDiv",
	"LLVMBuildSRem",
	"LLVMBuildStore",
	"LLVMBuildStructGEP",
	"LLVMBuildSub",
	"LLVMConstInt",
	"LLVMConstIntOfString",
	"LLVMConstNull",
	"LLVMConstRealOfString",
	"LLVMConstStringInContext",
	"LLVMContextCreate",
	"LLVMContextDispose",
	"LLVMCreateBuilderInContext",
	"LLVMCreateMessage",
	"LLVMDisposeBuilder",
	"LLVMDisposeMemoryBuffer",
	"LLVMDisposeMessage",
	"LLVMDisposeModule",
	"LLVMDoubleTypeInContext",
	"LLVMDumpModule",
	"LLVMFloatTypeInContext",
	"LLVMFunctionType",
	"LLVMGetNamedFunction",
	"LLVMGetNamedGlobal",
	"LLVMGetParam",
	"LLVMInt1TypeInContext",
	"LLVMInt32TypeInContext",
	"LLVMInt64TypeInContext",
	"LLVMInt8TypeInContext",
	"LLVMModuleCreateWithNameInContext",
	"LLVMPointerType",
	"LLVMPositionBuilderAtEnd",
	"LLVMSetGlobalConstant",
	"LLVMSetInitializer",
	"LLVMSetLinkage",
	"LLVMSetSourceFileName",
	"LLVMSetUnnamedAddress",
	"LLVMShutdown",
	"LLVMSizeOf",
	"LLVMStructCreateNamed",
	"LLVMStructSetBody",
	"LLVMTypeOf",
	"LLVMVoidTypeInContext",
	"LLVMGetFirstFunction",
	"LLVMGetNextFunction",

	// analysis
	"LLVMVerifyModule",

	// linker
	"LLVMLinkModules2",

	// target
	"LLVMInitializeX86AsmPrinter",
	"LLVMInitializeX86Target",
	"LLVMInitializeX86TargetInfo",
	"LLVMInitializeX86TargetMC",

	// target machine
	"LLVMCreateTargetMachine",
	"LLVMDisposeTargetMachine",
	"LLVMGetTargetFromTriple",
	"LLVMTargetMachineEmitToFile",
	"LLVMTargetMachineEmitToMemoryBuffer",

	// bit reader
	"LLVMParseBitcodeInContext2",

	// bit writer
	"LLVMWriteBitcodeToMemoryBuffer",

	// passes
	"LLVMAddDeadStoreEliminationPass",
	"LLVMAddPromoteMemoryToRegisterPass",
	"LLVMCreateFunctionPassManagerForModule",
	"LLVMCreatePassManager",
	"LLVMDisposePassManager",
	"LLVMFinalizeFunctionPassManager",
	"LLVMInitializeFunctionPassManager",
	"LLVMPassManagerBuilderCreate",
	"LLVMPassManagerBuilderDispose",
	"LLVMPassManagerBuilderPopulateFunctionPassManager",
	"LLVMPassManagerBuilderPopulateModulePassManager",
	"LLVMPassManagerBuilderSetOptLevel",
	"LLVMPassManagerBuilderUseInlinerWithThreshold",
	"LLVMRunFunctionPassManager",
	"LLVMRunPassManager",
}
