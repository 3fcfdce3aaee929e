package project

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default("demo")
	if s.Name != "demo" {
		t.Errorf("Name = %q, want %q", s.Name, "demo")
	}
	if s.Type != "cv" || s.Framework != "pytorch" || s.Model != "resnet50" {
		t.Errorf("defaults = %q/%q/%q, want cv/pytorch/resnet50", s.Type, s.Framework, s.Model)
	}
	if s.Augment || s.Wandb || s.Git || s.Docker || s.License || s.Venv {
		t.Errorf("all toggles should default to false: %+v", s)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		project string
		wantErr bool
	}{
		{"simple", "demo", false},
		{"dashes and dots", "my-proj.v2", false},
		{"underscore", "my_proj", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"dot", ".", false},
		{"dotdot", "..", false},
		{"nested", "a/b", false},
		{"deeply nested", "nested/deep/proj", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Default(tt.project).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.project, err, tt.wantErr)
			}
		})
	}
}

func TestValidateIgnoresUnknownValues(t *testing.T) {
	s := Default("demo")
	s.Type = "audio"
	s.Framework = "jax"
	s.Model = "whisper"
	if err := s.Validate(); err != nil {
		t.Errorf("unknown type/framework/model should be accepted, got %v", err)
	}
}

func TestValidateRejectsControlCharacters(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Spec)
	}{
		{"newline in model", func(s *Spec) { s.Model = "a\nb" }},
		{"tab in type", func(s *Spec) { s.Type = "cv\t" }},
		{"carriage return in framework", func(s *Spec) { s.Framework = "pytorch\r" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default("demo")
			tt.edit(&s)
			if err := s.Validate(); err == nil {
				t.Errorf("Validate() should reject %+v", s)
			}
		})
	}
}

func TestIsPyTorch(t *testing.T) {
	tests := []struct {
		framework string
		want      bool
	}{
		{"pytorch", true},
		{"tensorflow", false},
		{"jax", false},
		{"PyTorch", false},
		{"", false},
	}
	for _, tt := range tests {
		s := Spec{Framework: tt.framework}
		if got := s.IsPyTorch(); got != tt.want {
			t.Errorf("IsPyTorch(%q) = %v, want %v", tt.framework, got, tt.want)
		}
	}
}

func TestAdvisories(t *testing.T) {
	tests := []struct {
		framework string
		model     string
		want      int
	}{
		{"tensorflow", "resnet50", 1},
		{"tensorflow", "vit", 0},
		{"pytorch", "resnet50", 0},
		{"jax", "resnet50", 0},
	}
	for _, tt := range tests {
		s := Spec{Name: "demo", Framework: tt.framework, Model: tt.model}
		got := s.Advisories()
		if len(got) != tt.want {
			t.Errorf("Advisories(%s, %s) = %v, want %d messages", tt.framework, tt.model, got, tt.want)
		}
		if tt.want == 1 && !strings.Contains(got[0], "resnet50 with tensorflow") {
			t.Errorf("unexpected advisory text: %q", got[0])
		}
	}
}

func TestSummary(t *testing.T) {
	s := Default("demo")
	s.Wandb = true

	rows := s.Summary()
	if len(rows) != 10 {
		t.Fatalf("got %d rows, want 10", len(rows))
	}
	if rows[0].Label != "Name" || rows[0].Value != "demo" {
		t.Errorf("first row = %+v, want Name/demo", rows[0])
	}
	if rows[5].Label != "W&B" || rows[5].Value != "true" {
		t.Errorf("W&B row = %+v, want W&B/true", rows[5])
	}
	if rows[9].Label != "Venv" || rows[9].Value != "false" {
		t.Errorf("last row = %+v, want Venv/false", rows[9])
	}
}
