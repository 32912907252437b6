package service

import (
	"context"

	"github.com/legaldraft/backend/internal/model"
	"github.com/legaldraft/backend/internal/pkg/llm"
	"github.com/legaldraft/backend/internal/repository"
)

type mockTemplateRepo struct {
	ListFunc      func() ([]model.DocumentTemplate, error)
	GetByTypeFunc func(docType string) (*model.DocumentTemplate, error)
}

func (m *mockTemplateRepo) List() ([]model.DocumentTemplate, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, nil
}

func (m *mockTemplateRepo) GetByType(docType string) (*model.DocumentTemplate, error) {
	if m.GetByTypeFunc != nil {
		return m.GetByTypeFunc(docType)
	}
	return nil, repository.ErrNotFound
}

type mockJurisdictionRepo struct {
	GetFunc func(jurisdiction, docType string) (*model.JurisdictionRequirement, error)
}

func (m *mockJurisdictionRepo) Get(jurisdiction, docType string) (*model.JurisdictionRequirement, error) {
	if m.GetFunc != nil {
		return m.GetFunc(jurisdiction, docType)
	}
	return nil, nil
}

type mockDocumentRepo struct {
	CreateFunc    func(doc *model.Document) error
	GetFunc       func(id uint) (*model.Document, error)
	IncrementFunc func(id uint) error
	CountFunc     func() (int64, error)

	created []*model.Document
}

func (m *mockDocumentRepo) Create(doc *model.Document) error {
	m.created = append(m.created, doc)
	if m.CreateFunc != nil {
		return m.CreateFunc(doc)
	}
	doc.ID = uint(len(m.created))
	return nil
}

func (m *mockDocumentRepo) Get(id uint) (*model.Document, error) {
	if m.GetFunc != nil {
		return m.GetFunc(id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockDocumentRepo) IncrementDownloadCount(id uint) error {
	if m.IncrementFunc != nil {
		return m.IncrementFunc(id)
	}
	return nil
}

func (m *mockDocumentRepo) Count() (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc()
	}
	return int64(len(m.created)), nil
}

type fakeGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (*llm.Result, error)

	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (*llm.Result, error) {
	f.prompts = append(f.prompts, prompt)
	if f.GenerateFunc != nil {
		return f.GenerateFunc(ctx, prompt)
	}
	return &llm.Result{Content: "# Generated Document\n\nBody.", Model: "gpt-4o"}, nil
}

// seededTemplateRepo 以预置模板为后端的只读仓库
func seededTemplateRepo() *mockTemplateRepo {
	templates := defaultTemplates()
	return &mockTemplateRepo{
		ListFunc: func() ([]model.DocumentTemplate, error) {
			return templates, nil
		},
		GetByTypeFunc: func(docType string) (*model.DocumentTemplate, error) {
			for i := range templates {
				if templates[i].Type == docType {
					return &templates[i], nil
				}
			}
			return nil, repository.ErrNotFound
		},
	}
}

// employmentForm 雇佣合同场景的完整表单
func employmentForm() map[string]string {
	return map[string]string{
		"employerName":      "Acme Inc",
		"employeeName":      "Jane Doe",
		"jobTitle":          "Engineer",
		"startDate":         "2025-01-01",
		"salary":            "120000",
		"benefits":          "Health, dental",
		"workSchedule":      "full-time",
		"terminationClause": "30 days notice",
	}
}
