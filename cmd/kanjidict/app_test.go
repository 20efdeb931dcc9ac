// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-kanjidict/internal/testutil"
)

// The application sets the default logger so these tests do not run in
// parallel.

const scenario = `<p class="bor"></p><span class="textStyle48" id="k1">木</span><span class="textStyle46">き</span><span class="textStyle47">tree</span><p class="bor"></p>`

func glossary(t *testing.T) string {
	t.Helper()

	doc := testutil.Document(
		testutil.Block(
			testutil.Head("k1", "木"),
			testutil.Image("img/ki.png"),
			testutil.Reading("き"),
			testutil.Meaning("tree"),
			testutil.ExampleLine("木曜日", "もくようび", "Thursday"),
		),
		testutil.Block(
			testutil.Head("k2", "林"),
			testutil.Image("img/missing.png"),
			testutil.Meaning("grove"),
		),
	)
	path := testutil.WriteFile(t, "input/dict.xhtml", []byte(doc))
	img := filepath.Join(filepath.Dir(path), "img", "ki.png")
	if err := os.MkdirAll(filepath.Dir(img), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(img, []byte("png"), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func runApp(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	defer slog.SetDefault(slog.Default())

	var stdout, stderr bytes.Buffer
	code := run(append([]string{appName}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestConvert(t *testing.T) {
	input := glossary(t)
	base := filepath.Join(t.TempDir(), "out", "dictionary")

	code, _, stderr := runApp(t, "convert",
		"--out", base,
		"--xlsx",
		"--dictzip",
		"--synonyms",
		"--inline-images",
		"--copy-images",
		input,
	)
	if code != ExitCodeSuccess {
		t.Fatalf("convert: exit code %d\n%s", code, stderr)
	}

	for _, path := range []string{
		base + ".tsv",
		base + ".json",
		base + ".xlsx",
		base + ".images.json",
		filepath.Join(base, "dictionary.ifo"),
		filepath.Join(base, "dictionary.idx"),
		filepath.Join(base, "dictionary.dict.dz"),
		filepath.Join(base, "dictionary.syn"),
		filepath.Join(filepath.Dir(base), "images", "ki.png"),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Stat: %v", err)
		}
	}

	ifo, err := os.ReadFile(filepath.Join(base, "dictionary.ifo"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(ifo), "\nsynwordcount=1\n") {
		t.Errorf("ifo does not declare the synonyms:\n%s", ifo)
	}

	// The missing image is logged and skipped.
	if !strings.Contains(stderr, "img/missing.png") {
		t.Errorf("stderr does not mention the missing image:\n%s", stderr)
	}
	b, err := os.ReadFile(base + ".images.json")
	if err != nil {
		t.Fatal(err)
	}
	var inlined map[string]map[string]string
	if err := json.Unmarshal(b, &inlined); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	expected := map[string]map[string]string{
		"img/ki.png": {"data": "cG5n", "mime_type": "image/png", "filename": "ki.png"},
	}
	if diff := cmp.Diff(expected, inlined); diff != "" {
		t.Errorf("images.json (-want, +got):\n%s", diff)
	}

	// The exported dictionary can be looked up.
	code, stdout, stderr := runApp(t, "lookup", base, "林")
	if code != ExitCodeSuccess {
		t.Fatalf("lookup: exit code %d\n%s", code, stderr)
	}
	for _, s := range []string{"林", "Meaning: grove", "images/missing.png"} {
		if !strings.Contains(stdout, s) {
			t.Errorf("lookup output does not contain %q:\n%s", s, stdout)
		}
	}

	// Readings resolve through the synonyms.
	code, stdout, stderr = runApp(t, "lookup", base, "き")
	if code != ExitCodeSuccess {
		t.Fatalf("lookup: exit code %d\n%s", code, stderr)
	}
	if !strings.Contains(stdout, "Meaning: tree") {
		t.Errorf("lookup output does not contain the article:\n%s", stdout)
	}

	code, _, stderr = runApp(t, "lookup", base, "森")
	if want, got := ExitCodeNotFound, code; want != got {
		t.Errorf("lookup: want exit code %d, got %d", want, got)
	}
	if diff := cmp.Diff(appName+": not found: \"森\"\n", stderr); diff != "" {
		t.Errorf("lookup stderr (-want, +got):\n%s", diff)
	}
}

func TestConvert_scenario(t *testing.T) {
	input := testutil.WriteFile(t, "dict.xhtml", []byte(scenario))
	base := filepath.Join(t.TempDir(), "dictionary")

	code, _, stderr := runApp(t, "--log-format", "json", "convert", "--out", base, input)
	if code != ExitCodeSuccess {
		t.Fatalf("convert: exit code %d\n%s", code, stderr)
	}

	b, err := os.ReadFile(base + ".tsv")
	if err != nil {
		t.Fatal(err)
	}
	// The whole block is one line and the head character classifier
	// consumes it, so the reading and meaning on the same line are not read.
	expected := "Kanji\tReading\tMeaning\tLevel\tNumber\tStrokes\tExamples\tEtymology\tMnemonic\tImages\n" +
		"木\t\t\t\t\t\t\t\t\t"
	if diff := cmp.Diff(expected, string(b)); diff != "" {
		t.Errorf("tsv (-want, +got):\n%s", diff)
	}

	// Logs are JSON.
	first, _, _ := strings.Cut(stderr, "\n")
	var record map[string]any
	if err := json.Unmarshal([]byte(first), &record); err != nil {
		t.Errorf("log is not JSON: %v\n%s", err, stderr)
	}
}

func TestConvert_errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{
			name: "no input",
			args: []string{"convert"},
			code: ExitCodeFlagParseError,
		},
		{
			name: "too many inputs",
			args: []string{"convert", "a", "b"},
			code: ExitCodeFlagParseError,
		},
		{
			name: "missing input",
			args: []string{"convert", "--out", filepath.Join(t.TempDir(), "d"), filepath.Join(t.TempDir(), "missing.xhtml")},
			code: ExitCodeUnknownError,
		},
		{
			name: "bad log format",
			args: []string{"--log-format", "xml", "convert", "input.xhtml"},
			code: ExitCodeFlagParseError,
		},
		{
			name: "missing config",
			args: []string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "convert", "input.xhtml"},
			code: ExitCodeFlagParseError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, _, stderr := runApp(t, test.args...)
			if want, got := test.code, code; want != got {
				t.Errorf("exit code; want: %d, got: %d\n%s", want, got, stderr)
			}
			if !strings.HasPrefix(stderr, appName+": ") && !strings.Contains(stderr, "\n"+appName+": ") {
				t.Errorf("stderr does not contain the error:\n%s", stderr)
			}
			if strings.Contains(stderr, appName+": "+appName+": ") {
				t.Errorf("stderr repeats the application name:\n%s", stderr)
			}
		})
	}
}

func TestConvert_config(t *testing.T) {
	input := glossary(t)
	base := filepath.Join(t.TempDir(), "kanji")
	cfg := testutil.WriteFile(t, "config.yaml", []byte(fmt.Sprintf(`
input: %s
output: %s
stardict:
  bookname: Kanji Glossary
`, input, base)))

	code, _, stderr := runApp(t, "--config", cfg, "convert")
	if code != ExitCodeSuccess {
		t.Fatalf("convert: exit code %d\n%s", code, stderr)
	}

	b, err := os.ReadFile(filepath.Join(base, "dictionary.ifo"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "\nbookname=Kanji Glossary\n") {
		t.Errorf("ifo does not contain the bookname:\n%s", b)
	}
	if _, err := os.Stat(filepath.Join(base, "dictionary.dict")); err != nil {
		t.Errorf("Stat: %v", err)
	}
}

func TestShow(t *testing.T) {
	input := glossary(t)

	code, stdout, stderr := runApp(t, "show", input)
	if code != ExitCodeSuccess {
		t.Fatalf("show: exit code %d\n%s", code, stderr)
	}
	for _, s := range []string{"Kanji", "木", "林", "grove"} {
		if !strings.Contains(stdout, s) {
			t.Errorf("show output does not contain %q:\n%s", s, stdout)
		}
	}

	code, stdout, _ = runApp(t, "show", "--limit", "1", input)
	if code != ExitCodeSuccess {
		t.Fatalf("show: exit code %d", code)
	}
	if strings.Contains(stdout, "林") {
		t.Errorf("show --limit 1 printed the second entry:\n%s", stdout)
	}
}

func TestVersion(t *testing.T) {
	code, stdout, _ := runApp(t, "--version")
	if code != ExitCodeSuccess {
		t.Fatalf("--version: exit code %d", code)
	}
	if !strings.HasPrefix(stdout, appName+" ") {
		t.Errorf("--version output: %q", stdout)
	}
}
