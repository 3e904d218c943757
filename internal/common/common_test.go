// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package common

import (
	"path/filepath"
	"testing"
)

func TestRelativePath(t *testing.T) {

	t.Parallel()

	root := filepath.FromSlash("/work/app")
	tests := []struct {
		root, path, want string
	}{
		{root: root, path: filepath.FromSlash("/work/app/src/blog.ts"), want: "src/blog.ts"},
		{root: root, path: filepath.FromSlash("/work/other/x.ts"), want: "/work/other/x.ts"},
		{root: root, path: "src/rel.ts", want: "src/rel.ts"},
		{root: "", path: filepath.FromSlash("/abs/x.ts"), want: "/abs/x.ts"},
	}
	for _, tt := range tests {
		if got := RelativePath(tt.root, tt.path); got != tt.want {
			t.Errorf("RelativePath(%q, %q) = %q, want %q", tt.root, tt.path, got, tt.want)
		}
	}
}

func TestSliceStringToSet(t *testing.T) {

	t.Parallel()

	if got := SliceStringToSet([]string{"void", "", "void"}); len(got) != 1 {
		t.Errorf("SliceStringToSet() = %v", got)
	}
}
