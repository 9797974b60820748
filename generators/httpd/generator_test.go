// SPDX-License-Identifier: MIT
//
// Copyright 2026 The apyxs Authors. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package httpd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/apyxs/apyxs/generator"
	"github.com/apyxs/apyxs/internal/description"
	"github.com/apyxs/apyxs/internal/extract"
	"github.com/apyxs/apyxs/internal/testutil"
	"github.com/apyxs/apyxs/model"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no golden files found")
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatalf("parse txtar: %v", err)
			}

			tc, err := testutil.ParseCase(name, ar)
			if err != nil {
				t.Fatalf("parse case: %v", err)
			}

			if *update && tc.WantErr == "" {
				got, err := runGenerator(tc.Input, tc.Flags)
				if err != nil {
					t.Fatalf("generate: %v", err)
				}

				updated := testutil.UpdateArchive(ar, got)
				if err := os.WriteFile(file, testutil.FormatArchive(updated), 0o644); err != nil {
					t.Fatalf("write updated file: %v", err)
				}
				t.Logf("updated %s", file)
				return
			}

			tc.Run(t, runGenerator)
		})
	}
}

// runGenerator runs the full pipeline on an XML description.
func runGenerator(input []byte, flags []string) (map[string][]byte, error) {
	doc, err := description.Parse(input, "")
	if err != nil {
		return nil, err
	}
	m, err := extract.Assemble(doc)
	if err != nil {
		return nil, err
	}

	var cfg generator.Config
	for _, f := range flags {
		switch {
		case f == "command-table":
			cfg.CommandTable = true
		case strings.HasPrefix(f, "output="):
			cfg.OutputFile = strings.TrimPrefix(f, "output=")
		}
	}

	out, err := NewGenerator().Generate(context.Background(), m, cfg)
	if err != nil {
		return nil, err
	}
	return out.Files, nil
}

func TestGenerate_OutputFile(t *testing.T) {
	m := &model.Module{Name: "sample_module"}
	out, err := NewGenerator().Generate(context.Background(), m, generator.Config{OutputFile: "custom.c"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if _, ok := out.Files["custom.c"]; !ok {
		t.Errorf("got files %v, want custom.c", out.Names())
	}
}

func TestGenerate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator().Generate(ctx, &model.Module{Name: "sample_module"}, generator.Config{})
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestGenerate_SourceHeader(t *testing.T) {
	m := &model.Module{Name: "sample_module"}
	out, err := NewGenerator().Generate(context.Background(), m, generator.Config{Source: "file://sample.xml"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	src := string(out.Files["mod_sample.c"])
	if !strings.Contains(src, " * Source: file://sample.xml") {
		t.Errorf("missing source header:\n%s", src)
	}
	if body := string(testutil.StripHeader(out.Files["mod_sample.c"])); !strings.HasPrefix(body, "#include") {
		t.Errorf("StripHeader() left %q", body)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "sample_module", want: "mod_sample.c"},
		{name: "auth_basic_module", want: "mod_auth_basic.c"},
		{name: "rewrite", want: "mod_rewrite.c"},
		{name: "_module", want: "mod__module.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileName(tt.name); got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestMetadata(t *testing.T) {
	meta := NewGenerator().Metadata()
	if meta.Name != "httpd" {
		t.Errorf("Name = %q, want httpd", meta.Name)
	}
	if len(meta.FileExtensions) != 1 || meta.FileExtensions[0] != ".c" {
		t.Errorf("FileExtensions = %v, want [.c]", meta.FileExtensions)
	}
}

func TestGenerate_IncludesOption(t *testing.T) {
	cfg := generator.Config{Options: map[string]string{OptionIncludes: " http_log.h, ,http_request.h"}}
	out, err := NewGenerator().Generate(context.Background(), &model.Module{Name: "sample_module"}, cfg)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	src := string(out.Files["mod_sample.c"])
	want := "#include \"ap_config.h\"\n#include \"http_log.h\"\n#include \"http_request.h\"\n\n"
	if !strings.Contains(src, want) {
		t.Errorf("extra includes not appended after the defaults:\n%s", src)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "", want: nil},
		{input: "a.h", want: []string{"a.h"}},
		{input: " a.h , b.h ,", want: []string{"a.h", "b.h"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, splitList(tt.input)); diff != "" {
				t.Errorf("splitList(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}
