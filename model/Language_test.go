package model

import "testing"

func TestClassifyLanguageUppercaseCDotIsCpp(t *testing.T) {
	if got := ClassifyLanguage("widget.C"); got != LangCpp {
		t.Fatalf("ClassifyLanguage(widget.C) = %v, want LangCpp", got)
	}
	if got := ClassifyLanguage("widget.c"); got != LangC {
		t.Fatalf("ClassifyLanguage(widget.c) = %v, want LangC", got)
	}
}

func TestClassifyLanguageLowercaseFallback(t *testing.T) {
	if got := ClassifyLanguage("widget.CPP"); got != LangCpp {
		t.Fatalf("ClassifyLanguage(widget.CPP) = %v, want LangCpp", got)
	}
	if got := ClassifyLanguage("widget.Hpp"); got != LangCpp {
		t.Fatalf("ClassifyLanguage(widget.Hpp) = %v, want LangCpp", got)
	}
}

func TestUsesCppDriverRecognizesUppercaseCDot(t *testing.T) {
	if !UsesCppDriver([]string{"main.c", "widget.C"}) {
		t.Fatalf("expected a .C source to trigger the C++ driver")
	}
	if UsesCppDriver([]string{"main.c", "util.c"}) {
		t.Fatalf("did not expect plain .c sources to trigger the C++ driver")
	}
}

func TestIsModuleInterface(t *testing.T) {
	if !IsModuleInterface("math.cppm") {
		t.Fatalf("expected .cppm to be a module interface")
	}
	if !IsModuleInterface("math.IXX") {
		t.Fatalf("expected a mixed-case .IXX to fall back and match .ixx")
	}
	if IsModuleInterface("math.cpp") {
		t.Fatalf("did not expect .cpp to be a module interface")
	}
}
