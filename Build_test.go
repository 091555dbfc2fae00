package ovo

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/donaldfilimon/ovo/bmicache"
	"github.com/donaldfilimon/ovo/compiler"
	"github.com/donaldfilimon/ovo/compiler/compilermock"
	"github.com/donaldfilimon/ovo/model"
)

func TestBuildCompilesAndLinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := compilermock.NewMockCompiler(ctrl)

	mock.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(compiler.CompileResult{
		Success:    true,
		OutputPath: "a.o",
	}, nil).Times(2)
	mock.EXPECT().Link(gomock.Any(), gomock.Any()).Return(compiler.LinkResult{
		Success:    true,
		OutputPath: "a.out",
	}, nil)

	result, err := Build(context.Background(), mock, model.CompileOptions{
		Sources: []string{"a.cpp", "b.cpp"},
	}, model.LinkOptions{Output: "a.out"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if len(result.ObjectPaths) != 2 {
		t.Fatalf("expected 2 object paths, got %v", result.ObjectPaths)
	}
}

func TestBuildStopsOnCompileFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := compilermock.NewMockCompiler(ctrl)

	mock.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(compiler.CompileResult{
		Success: false,
		Stderr:  "boom",
	}, nil)

	result, err := Build(context.Background(), mock, model.CompileOptions{
		Sources: []string{"broken.cpp"},
	}, model.LinkOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if result.Success {
		t.Fatalf("expected failure to propagate")
	}
}

func TestBuildWithModulesCompilesInterfaceBeforeConsumer(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := compilermock.NewMockCompiler(ctrl)

	mock.EXPECT().Kind().Return(compiler.KindClang).AnyTimes()
	mock.EXPECT().Capabilities().Return(compiler.Capabilities{CppModules: true, Version: "18.0"}).AnyTimes()

	mock.EXPECT().ScanModuleDeps(gomock.Any(), "math.cppm", gomock.Any()).Return(compiler.ModuleDepsResult{
		Success:     true,
		Provides:    "math",
		IsInterface: true,
	}, nil)
	mock.EXPECT().ScanModuleDeps(gomock.Any(), "main.cpp", gomock.Any()).Return(compiler.ModuleDepsResult{
		Success: true,
		Dependencies: []model.ModuleDependency{
			{Name: "math", Kind: model.ModuleImport},
		},
	}, nil)

	ifaceCall := mock.EXPECT().CompileModuleInterface(gomock.Any(), "math.cppm", gomock.Any(), gomock.Any()).Return(compiler.CompileResult{
		Success:    true,
		OutputPath: "math.pcm",
	}, nil)
	compileCall := mock.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(compiler.CompileResult{
		Success:    true,
		OutputPath: "out.o",
	}, nil).Times(2)
	gomock.InOrder(ifaceCall, compileCall)
	mock.EXPECT().Link(gomock.Any(), gomock.Any()).Return(compiler.LinkResult{Success: true}, nil)

	dir := t.TempDir()
	cache, err := bmicache.New(dir)
	if err != nil {
		t.Fatalf("bmicache.New: %s", err)
	}

	result, err := BuildWithModules(context.Background(), mock,
		[]string{"main.cpp", "math.cppm"},
		model.CompileOptions{},
		model.LinkOptions{Output: "a.out"},
		cache,
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if len(result.Unresolved) != 0 {
		t.Fatalf("expected no unresolved deps, got %v", result.Unresolved)
	}
}

func TestBuildWithModulesReportsUnresolvedDependency(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := compilermock.NewMockCompiler(ctrl)

	mock.EXPECT().Kind().Return(compiler.KindClang).AnyTimes()
	mock.EXPECT().Capabilities().Return(compiler.Capabilities{CppModules: true}).AnyTimes()

	mock.EXPECT().ScanModuleDeps(gomock.Any(), "main.cpp", gomock.Any()).Return(compiler.ModuleDepsResult{
		Success: true,
		Dependencies: []model.ModuleDependency{
			{Name: "ghost", Kind: model.ModuleImport},
		},
	}, nil)
	mock.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(compiler.CompileResult{
		Success:    true,
		OutputPath: "main.o",
	}, nil)
	mock.EXPECT().Link(gomock.Any(), gomock.Any()).Return(compiler.LinkResult{Success: true}, nil)

	dir := t.TempDir()
	cache, err := bmicache.New(dir)
	if err != nil {
		t.Fatalf("bmicache.New: %s", err)
	}

	result, err := BuildWithModules(context.Background(), mock,
		[]string{"main.cpp"},
		model.CompileOptions{},
		model.LinkOptions{},
		cache,
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(result.Unresolved) != 1 || result.Unresolved[0].Name != "ghost" {
		t.Fatalf("expected one unresolved dependency named ghost, got %v", result.Unresolved)
	}
}
