package validation

import (
	"errors"
	"testing"

	"github.com/eduplay/platform-api/internal/core/domain"
)

type sample struct {
	Name  string `json:"name"  validate:"notblank"`
	Email string `json:"email" validate:"notblank"`
	Note  string
}

func TestStruct_Valid(t *testing.T) {
	v := New()
	if err := Struct(v, sample{Name: "alice", Email: "alice@x.com"}, "bad"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestStruct_BlankFieldsReported(t *testing.T) {
	v := New()
	err := Struct(v, sample{Name: "   ", Email: ""}, "All fields are required")
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *domain.Error, got %T", err)
	}
	if de.Kind != domain.KindValidation {
		t.Fatalf("expected validation kind, got %v", de.Kind)
	}
	if de.Message != "All fields are required" {
		t.Fatalf("unexpected message: %s", de.Message)
	}
	if len(de.Details) != 2 || de.Details[0] != "name is required" || de.Details[1] != "email is required" {
		t.Fatalf("unexpected details: %v", de.Details)
	}
}

func TestStruct_FieldWithoutJSONTagUsesGoName(t *testing.T) {
	type plain struct {
		Title string `validate:"notblank"`
	}
	err := Struct(New(), plain{}, "invalid")

	var de *domain.Error
	if !errors.As(err, &de) || len(de.Details) != 1 || de.Details[0] != "Title is required" {
		t.Fatalf("unexpected error: %v", err)
	}
}
