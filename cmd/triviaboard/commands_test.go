package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/playperu/triviaboard/internal/trivia"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExampleCommand(t *testing.T) {
	out, err := execute(t, "example")
	if err != nil {
		t.Fatalf("example: %v", err)
	}
	doc, err := trivia.Parse([]byte(out))
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if doc.Title != "Trivia Challenge" {
		t.Errorf("title = %q", doc.Title)
	}

	path := filepath.Join(t.TempDir(), "example.json")
	if _, err := execute(t, "example", "-o", path); err != nil {
		t.Fatalf("example -o: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if strings.TrimSpace(out) != string(data) {
		t.Error("file output differs from stdout output")
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		os.WriteFile(p, []byte(content), 0o644)
		return p
	}

	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{
			name:    "valid",
			content: `{"title":"Quiz","categories":[{"name":"A","questions":[{"value":100,"question":"q","answer":"a"}]}]}`,
			want:    "Quiz: 1 categories, 1 questions",
		},
		{
			name:    "duplicates",
			content: `{"title":"Dup","categories":[{"name":"Art","questions":[]},{"name":"art ","questions":[]}]}`,
			want:    "appears more than once",
		},
		{
			name:    "invalid",
			content: `{"title":"Nope"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "check", write(tt.name+".json", tt.content))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("check: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestCheckRequiresFile(t *testing.T) {
	if _, err := execute(t, "check"); err == nil {
		t.Error("expected an argument error")
	}
}
