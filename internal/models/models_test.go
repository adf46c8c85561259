// internal/models/models_test.go
package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func sampleModel() Model {
	return Model{
		Name:       "llama3",
		Model:      "llama3:latest",
		ModifiedAt: "2024-01-01T00:00:00Z",
		Size:       123,
		Digest:     "abc",
		Details: Detail{
			ParentModel:       "",
			Format:            "gguf",
			Family:            "llama",
			ParameterSize:     "8B",
			QuantizationLevel: "Q4_0",
		},
	}
}

func TestModelLines(t *testing.T) {
	want := []string{
		"Model Name: llama3",
		"Model ID: llama3:latest",
		"Modified At: 2024-01-01T00:00:00Z",
		"Size: 123 bytes",
		"Digest: abc",
		"Parent Model: ",
		"Format: gguf",
		"Family: llama",
		"Parameter Size: 8B",
		"Quantization Level: Q4_0",
	}
	if got := sampleModel().Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() mismatch\n got: %q\nwant: %q", got, want)
	}
}

// TestDetailFamilies checks that only a present, non-empty families list
// produces bullet lines, in the order the server sent them.
func TestDetailFamilies(t *testing.T) {
	tests := []struct {
		name     string
		families []string
		bullets  []string
	}{
		{"nil", nil, nil},
		{"empty", []string{}, nil},
		{"two", []string{"a", "b"}, []string{" - a", " - b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Detail{Family: "llama", Families: tt.families}
			var bullets []string
			for _, line := range d.Lines() {
				if strings.HasPrefix(line, " - ") {
					bullets = append(bullets, line)
				}
			}
			if !reflect.DeepEqual(bullets, tt.bullets) {
				t.Fatalf("bullets = %q, want %q", bullets, tt.bullets)
			}
			if len(d.Lines()) != 5+len(tt.bullets) {
				t.Fatalf("expected %d lines, got %d", 5+len(tt.bullets), len(d.Lines()))
			}
		})
	}
}

func TestFamiliesNullAbsentAndEmptyStayDistinct(t *testing.T) {
	var absent, null, empty Detail
	if err := json.Unmarshal([]byte(`{}`), &absent); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`{"families": null}`), &null); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`{"families": []}`), &empty); err != nil {
		t.Fatal(err)
	}
	if absent.Families != nil || null.Families != nil {
		t.Fatal("expected nil families for absent and null")
	}
	if empty.Families == nil || len(empty.Families) != 0 {
		t.Fatal("expected empty non-nil families for []")
	}
}

func TestModelsLinesKeepOrderAndDividers(t *testing.T) {
	first := sampleModel()
	second := sampleModel()
	second.Name = "mistral"
	list := Models{Models: []Model{first, second}}

	lines := list.Lines()
	if len(lines) != 2*(len(first.Lines())+1) {
		t.Fatalf("unexpected line count %d", len(lines))
	}
	if lines[0] != "Model Name: llama3" {
		t.Fatalf("expected first model first, got %q", lines[0])
	}
	mid := len(first.Lines())
	if lines[mid] != Divider || lines[len(lines)-1] != Divider {
		t.Fatalf("expected divider after each model: %q", lines)
	}
	if lines[mid+1] != "Model Name: mistral" {
		t.Fatalf("expected second model after divider, got %q", lines[mid+1])
	}

	if (Models{}).Lines() != nil {
		t.Fatal("expected no lines for empty list")
	}
}

func TestRenderPlainWriter(t *testing.T) {
	model := sampleModel()
	model.Details.Families = []string{"llama", "clip"}

	var buf bytes.Buffer
	if err := Render(&buf, Models{Models: []Model{model}}); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	want := strings.Join(append(model.Lines(), Divider), "\n") + "\n"
	if buf.String() != want {
		t.Fatalf("Render output mismatch\n got: %q\nwant: %q", buf.String(), want)
	}
}

// TestRenderMatchesLines checks that rendering to a plain writer prints
// exactly what Models.Lines formats, dividers included.
func TestRenderMatchesLines(t *testing.T) {
	first := sampleModel()
	second := sampleModel()
	second.Name = "mistral"
	second.Details.Families = []string{"llama"}
	list := Models{Models: []Model{first, second}}

	var buf bytes.Buffer
	if err := Render(&buf, list); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	want := strings.Join(list.Lines(), "\n") + "\n"
	if buf.String() != want {
		t.Fatalf("Render output mismatch\n got: %q\nwant: %q", buf.String(), want)
	}

	buf.Reset()
	if err := Render(&buf, Models{}); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing rendered for empty list, got %q", buf.String())
	}
}

func TestSummaryAndSizes(t *testing.T) {
	a := sampleModel()
	a.Size = 1024
	b := sampleModel()
	b.Size = 2048
	list := Models{Models: []Model{a, b}}

	if list.TotalSize() != 3072 {
		t.Fatalf("expected total 3072, got %d", list.TotalSize())
	}
	if got := list.Summary(); got != "2 models, 3.0 KiB total" {
		t.Fatalf("unexpected summary %q", got)
	}
	if got := (Models{Models: []Model{a}}).Summary(); got != "1 model, 1.0 KiB total" {
		t.Fatalf("unexpected summary %q", got)
	}
	if !(Models{}).Empty() || list.Empty() {
		t.Fatal("Empty() mismatch")
	}
}
