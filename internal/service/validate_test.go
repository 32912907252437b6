package service

import (
	"errors"
	"testing"
)

func TestValidateUnknownDocumentType(t *testing.T) {
	templates := seededTemplateRepo()

	_, err := validateRequest(GenerateRequest{
		Type:         "not-a-real-type",
		Jurisdiction: "CA",
		FormData:     employmentForm(),
	}, templates)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Code != CodeUnknownDocumentType {
		t.Fatalf("expected code %s, got %s", CodeUnknownDocumentType, vErr.Code)
	}
}

func TestValidateMalformedJurisdiction(t *testing.T) {
	templates := seededTemplateRepo()

	for _, jurisdiction := range []string{"", "C", "CAL", "C1", "C-"} {
		_, err := validateRequest(GenerateRequest{
			Type:         "employment",
			Jurisdiction: jurisdiction,
			FormData:     employmentForm(),
		}, templates)

		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Code != CodeMalformedJurisdiction {
			t.Fatalf("jurisdiction %q: expected malformed_jurisdiction, got %v", jurisdiction, err)
		}
	}
}

func TestValidateMissingRequiredFieldNamesField(t *testing.T) {
	templates := seededTemplateRepo()

	form := employmentForm()
	delete(form, "salary")

	_, err := validateRequest(GenerateRequest{
		Type:         "employment",
		Jurisdiction: "CA",
		FormData:     form,
	}, templates)

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Code != CodeMissingRequiredField || vErr.Field != "salary" {
		t.Fatalf("expected missing salary, got code=%s field=%s", vErr.Code, vErr.Field)
	}
}

func TestValidateBlankRequiredFieldRejected(t *testing.T) {
	templates := seededTemplateRepo()

	form := employmentForm()
	form["employeeName"] = "   "

	_, err := validateRequest(GenerateRequest{
		Type:         "employment",
		Jurisdiction: "CA",
		FormData:     form,
	}, templates)

	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "employeeName" {
		t.Fatalf("expected missing employeeName, got %v", err)
	}
}

// 每个模板逐个去掉必填字段都必须被点名拒绝
func TestValidateRequiredFieldEnforcementAllTemplates(t *testing.T) {
	templates := seededTemplateRepo()

	for _, tmpl := range defaultTemplates() {
		form := map[string]string{}
		for _, f := range tmpl.Fields.Data() {
			form[f.Key] = "value"
		}

		for _, f := range tmpl.Fields.Data() {
			if !f.Required {
				continue
			}
			incomplete := map[string]string{}
			for k, v := range form {
				incomplete[k] = v
			}
			delete(incomplete, f.Key)

			_, err := validateRequest(GenerateRequest{
				Type:         tmpl.Type,
				Jurisdiction: "NY",
				FormData:     incomplete,
			}, templates)

			var vErr *ValidationError
			if !errors.As(err, &vErr) || vErr.Field != f.Key {
				t.Fatalf("template %s: expected missing %s, got %v", tmpl.Type, f.Key, err)
			}
		}

		valid, err := validateRequest(GenerateRequest{
			Type:         tmpl.Type,
			Jurisdiction: "NY",
			FormData:     form,
		}, templates)
		if err != nil {
			t.Fatalf("template %s: expected complete form to pass, got %v", tmpl.Type, err)
		}
		if valid.template.Type != tmpl.Type {
			t.Fatalf("template %s: resolved wrong template %s", tmpl.Type, valid.template.Type)
		}
	}
}

func TestValidateNormalizesJurisdiction(t *testing.T) {
	templates := seededTemplateRepo()

	valid, err := validateRequest(GenerateRequest{
		Type:         "employment",
		Jurisdiction: "ca",
		FormData:     employmentForm(),
	}, templates)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if valid.Jurisdiction != "CA" {
		t.Fatalf("expected normalized CA, got %s", valid.Jurisdiction)
	}
}
