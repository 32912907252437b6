package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/datatypes"

	"github.com/legaldraft/backend/internal/model"
	"github.com/legaldraft/backend/internal/pkg/llm"
)

func newPipeline(docRepo *mockDocumentRepo, gen *fakeGenerator) *GenerateService {
	return NewGenerateService(seededTemplateRepo(), &mockJurisdictionRepo{}, docRepo, gen)
}

func TestGenerateHappyPath(t *testing.T) {
	docRepo := &mockDocumentRepo{}
	gen := &fakeGenerator{}
	svc := newPipeline(docRepo, gen)

	result, err := svc.Generate(context.Background(), GenerateRequest{
		Type:         "employment",
		Jurisdiction: "CA",
		FormData:     employmentForm(),
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if result.DocumentID == 0 {
		t.Fatalf("expected positive document id")
	}
	if result.Title != "Employment Contract - Acme Inc" {
		t.Fatalf("unexpected title: %s", result.Title)
	}
	if result.Content == "" {
		t.Fatalf("expected non-empty content")
	}

	if len(docRepo.created) != 1 {
		t.Fatalf("expected 1 stored document, got %d", len(docRepo.created))
	}
	stored := docRepo.created[0]
	if stored.Type != "employment" || stored.Jurisdiction != "CA" {
		t.Fatalf("unexpected stored record: %+v", stored)
	}
	if stored.FormData.Data()["salary"] != "120000" {
		t.Fatalf("form data not persisted: %+v", stored.FormData.Data())
	}

	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "Jane Doe") {
		t.Fatalf("unexpected prompt sent to generator: %v", gen.prompts)
	}
}

func TestGenerateValidationFailureSkipsGenerator(t *testing.T) {
	docRepo := &mockDocumentRepo{}
	gen := &fakeGenerator{}
	svc := newPipeline(docRepo, gen)

	form := employmentForm()
	delete(form, "salary")

	_, err := svc.Generate(context.Background(), GenerateRequest{
		Type:         "employment",
		Jurisdiction: "CA",
		FormData:     form,
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "salary" {
		t.Fatalf("expected missing salary, got %v", err)
	}
	if len(gen.prompts) != 0 {
		t.Fatalf("generator must not be called on validation failure")
	}
	if len(docRepo.created) != 0 {
		t.Fatalf("store must stay unchanged on validation failure")
	}
}

func TestGenerateUnknownTypeSkipsGenerator(t *testing.T) {
	docRepo := &mockDocumentRepo{}
	gen := &fakeGenerator{}
	svc := newPipeline(docRepo, gen)

	_, err := svc.Generate(context.Background(), GenerateRequest{
		Type:         "not-a-real-type",
		Jurisdiction: "CA",
		FormData:     employmentForm(),
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Code != CodeUnknownDocumentType {
		t.Fatalf("expected unknown_document_type, got %v", err)
	}
	if len(gen.prompts) != 0 || len(docRepo.created) != 0 {
		t.Fatalf("no generation or persistence may happen for unknown type")
	}
}

func TestGenerateFailureDoesNotPersist(t *testing.T) {
	docRepo := &mockDocumentRepo{}
	gen := &fakeGenerator{
		GenerateFunc: func(ctx context.Context, prompt string) (*llm.Result, error) {
			return nil, errors.New("upstream exploded")
		},
	}
	svc := newPipeline(docRepo, gen)

	_, err := svc.Generate(context.Background(), GenerateRequest{
		Type:         "employment",
		Jurisdiction: "CA",
		FormData:     employmentForm(),
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(docRepo.created) != 0 {
		t.Fatalf("store must stay unchanged on generation failure")
	}
}

func TestGenerateNotConfiguredPropagates(t *testing.T) {
	docRepo := &mockDocumentRepo{}
	gen := &fakeGenerator{
		GenerateFunc: func(ctx context.Context, prompt string) (*llm.Result, error) {
			return nil, llm.ErrNotConfigured
		},
	}
	svc := newPipeline(docRepo, gen)

	_, err := svc.Generate(context.Background(), GenerateRequest{
		Type:         "employment",
		Jurisdiction: "CA",
		FormData:     employmentForm(),
	})
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if len(docRepo.created) != 0 {
		t.Fatalf("store must stay unchanged when service is unavailable")
	}
}

func TestGenerateJurisdictionRequirementMergedIntoPrompt(t *testing.T) {
	docRepo := &mockDocumentRepo{}
	gen := &fakeGenerator{}
	svc := NewGenerateService(
		seededTemplateRepo(),
		&mockJurisdictionRepo{
			GetFunc: func(jurisdiction, docType string) (*model.JurisdictionRequirement, error) {
				if jurisdiction == "CA" && docType == "employment" {
					return &model.JurisdictionRequirement{
						Jurisdiction: "CA",
						DocumentType: "employment",
						Requirements: datatypes.JSON(`{"notes":["at-will"]}`),
					}, nil
				}
				return nil, nil
			},
		},
		docRepo,
		gen,
	)

	_, err := svc.Generate(context.Background(), GenerateRequest{
		Type:         "employment",
		Jurisdiction: "CA",
		FormData:     employmentForm(),
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !strings.Contains(gen.prompts[0], "at-will") {
		t.Fatalf("jurisdiction requirements missing from prompt:\n%s", gen.prompts[0])
	}
}

func TestGenerateDemoFlagSurfaces(t *testing.T) {
	docRepo := &mockDocumentRepo{}
	gen := &fakeGenerator{
		GenerateFunc: func(ctx context.Context, prompt string) (*llm.Result, error) {
			return &llm.Result{Content: "# Sample", Model: "[DEMO]gpt-4o", Demo: true}, nil
		},
	}
	svc := newPipeline(docRepo, gen)

	result, err := svc.Generate(context.Background(), GenerateRequest{
		Type:         "employment",
		Jurisdiction: "CA",
		FormData:     employmentForm(),
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !result.Demo {
		t.Fatalf("demo generation must be labeled")
	}
}

func TestDeriveTitleGuessesParty(t *testing.T) {
	cases := []struct {
		form map[string]string
		want string
	}{
		{map[string]string{"employerName": "Acme Inc"}, "Employment Contract - Acme Inc"},
		{map[string]string{"disclosingParty": "Globex"}, "Employment Contract - Globex"},
		{map[string]string{"serviceProvider": "Initech"}, "Employment Contract - Initech"},
		{map[string]string{}, "Employment Contract - Document"},
	}
	for _, tc := range cases {
		if got := deriveTitle("Employment Contract", tc.form); got != tc.want {
			t.Fatalf("deriveTitle(%v) = %q, want %q", tc.form, got, tc.want)
		}
	}
}
