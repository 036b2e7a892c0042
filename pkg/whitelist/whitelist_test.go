package whitelist

import (
	"reflect"
	"testing"
)

func TestContains(t *testing.T) {
	wl := New("LLVMBuildAdd", "LLVMContextCreate", "LLVMBuildAdd")

	if wl.Len() != 2 {
		t.Errorf("Expected duplicates to collapse to 2 names, got %d", wl.Len())
	}
	if !wl.Contains("LLVMBuildAdd") {
		t.Error("Expected LLVMBuildAdd to be whitelisted")
	}
	if wl.Contains("llvmbuildadd") || wl.Contains("LLVMBuildSub") {
		t.Error("Expected lookups to be exact")
	}

	expected := []string{"LLVMBuildAdd", "LLVMContextCreate"}
	if !reflect.DeepEqual(wl.Names(), expected) {
		t.Errorf("Expected %v, got %v", expected, wl.Names())
	}
}

func TestDefault(t *testing.T) {
	wl := Default()

	for _, name := range []string{
		"LLVMBuildAdd",
		"LLVMContextCreate",
		"LLVMModuleCreateWithNameInContext",
		"LLVMVerifyModule",
		"LLVMGetTargetFromTriple",
	} {
		if !wl.Contains(name) {
			t.Errorf("Expected default whitelist to contain %s", name)
		}
	}

	if wl.Contains("LLVMGetDataLayout") {
		t.Error("Expected deprecated LLVMGetDataLayout to be absent")
	}
	if wl.Len() != len(wl.Names()) {
		t.Errorf("Len %d does not match Names %d", wl.Len(), len(wl.Names()))
	}
}
