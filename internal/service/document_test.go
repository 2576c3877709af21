package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/nyayaai/backend/internal/model"
	"github.com/nyayaai/backend/internal/repository"
	"gorm.io/gorm"
)

func newTestServices(t *testing.T) (*TemplateService, *DocumentService) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(&model.Template{}, &model.Document{}); err != nil {
		t.Fatalf("migrate error: %v", err)
	}

	tplSvc := NewTemplateService(repository.NewTemplateRepository(db))
	if err := tplSvc.Seed(); err != nil {
		t.Fatalf("seed error: %v", err)
	}
	docSvc := NewDocumentService(repository.NewDocumentRepository(db), tplSvc)
	return tplSvc, docSvc
}

func rentalFormData() model.FormData {
	return model.FormData{
		"landlord_name":    "A Sharma",
		"tenant_name":      "B Rao",
		"property_address": "12 MG Road, Bengaluru",
		"monthly_rent":     "15000",
		"security_deposit": "45000",
		"lease_duration":   "1 year",
		"start_date":       "2026-03-01",
	}
}

func TestTemplateServiceFallsBackToDefault(t *testing.T) {
	tplSvc, _ := newTestServices(t)

	tpl := tplSvc.GetBySlug("no-such-template")
	if tpl.Slug != "rental-agreement" {
		t.Fatalf("expected default template fallback, got %s", tpl.Slug)
	}
	if len(tpl.Fields) == 0 || tpl.Body == "" {
		t.Fatalf("default template must be renderable")
	}
}

func TestTemplateServiceSeedIsIdempotent(t *testing.T) {
	tplSvc, _ := newTestServices(t)

	if err := tplSvc.Seed(); err != nil {
		t.Fatalf("second seed error: %v", err)
	}
	tpls, err := tplSvc.List("", "")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(tpls) != 6 {
		t.Fatalf("expected 6 system templates, got %d", len(tpls))
	}
}

func TestDocumentServiceGenerate(t *testing.T) {
	_, docSvc := newTestServices(t)

	draft, violations := docSvc.Generate("rental-agreement", rentalFormData())
	if len(violations) != 0 {
		t.Fatalf("unexpected violations: %v", violations)
	}
	if strings.Contains(draft.Content, "{monthly_rent}") {
		t.Fatalf("placeholders must be substituted")
	}
	if !strings.Contains(draft.Content, "₹15000") {
		t.Fatalf("rendered draft missing rent amount:\n%s", draft.Content)
	}
	// Optional field absent: bracketed label, not an empty hole.
	if !strings.Contains(draft.Content, "[Special Terms & Conditions]") {
		t.Fatalf("expected bracketed label for absent optional field")
	}
}

func TestDocumentServiceGenerateRejectsMissingRequired(t *testing.T) {
	_, docSvc := newTestServices(t)

	values := rentalFormData()
	delete(values, "tenant_name")

	draft, violations := docSvc.Generate("rental-agreement", values)
	if draft != nil {
		t.Fatalf("expected no draft on validation failure")
	}
	if len(violations) != 1 || violations[0].FieldID != "tenant_name" {
		t.Fatalf("unexpected violations: %v", violations)
	}
}

func TestDocumentServiceCreateAndList(t *testing.T) {
	_, docSvc := newTestServices(t)

	doc, violations, err := docSvc.Create("user-1", CreateDocumentRequest{
		TemplateSlug: "rental-agreement",
		Content:      "Final rendered text.",
		FormData:     rentalFormData(),
	})
	if err != nil || len(violations) != 0 {
		t.Fatalf("Create error: %v violations: %v", err, violations)
	}
	if !strings.HasPrefix(doc.Title, "Rental Agreement - ") {
		t.Fatalf("expected derived title, got %q", doc.Title)
	}

	docs, err := docSvc.List("user-1", "")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(docs) != 1 || docs[0].ID != doc.ID {
		t.Fatalf("unexpected list result: %+v", docs)
	}
}

func TestDocumentServiceCreateRejectsEmptyContent(t *testing.T) {
	_, docSvc := newTestServices(t)

	if _, _, err := docSvc.Create("user-1", CreateDocumentRequest{
		TemplateSlug: "rental-agreement",
		Content:      "  \n ",
		FormData:     rentalFormData(),
	}); err == nil {
		t.Fatalf("expected error on empty content")
	}
}

func TestDocumentServiceCreateRevalidates(t *testing.T) {
	_, docSvc := newTestServices(t)

	values := rentalFormData()
	delete(values, "landlord_name")

	doc, violations, err := docSvc.Create("user-1", CreateDocumentRequest{
		TemplateSlug: "rental-agreement",
		Content:      "text",
		FormData:     values,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if doc != nil || len(violations) != 1 {
		t.Fatalf("server-side validation must reject missing required fields: %v", violations)
	}
}

func TestDocumentServiceSearch(t *testing.T) {
	_, docSvc := newTestServices(t)

	for _, req := range []CreateDocumentRequest{
		{TemplateSlug: "rental-agreement", Title: "Flat lease", Content: "Rent is 15000.", FormData: rentalFormData()},
		{TemplateSlug: "legal-notice", Title: "Notice to builder", Content: "Defect liability period.", FormData: model.FormData{
			"sender_name": "A Sharma", "recipient_name": "XYZ Builders", "recipient_address": "Pune",
			"subject": "Delayed possession", "grievance": "Two years of delay", "remedy_days": "15",
		}},
	} {
		if _, violations, err := docSvc.Create("user-1", req); err != nil || len(violations) != 0 {
			t.Fatalf("Create error: %v violations: %v", err, violations)
		}
	}

	// Match on content, case-insensitive.
	docs, err := docSvc.List("user-1", "DEFECT")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(docs) != 1 || docs[0].Title != "Notice to builder" {
		t.Fatalf("unexpected search result: %+v", docs)
	}

	// Match on the source template's title.
	docs, err = docSvc.List("user-1", "rental agreement")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(docs) != 1 || docs[0].Title != "Flat lease" {
		t.Fatalf("expected template-title match, got %+v", docs)
	}
}

func TestDocumentServiceDeleteIsOwnerScoped(t *testing.T) {
	_, docSvc := newTestServices(t)

	doc, _, err := docSvc.Create("user-1", CreateDocumentRequest{
		TemplateSlug: "rental-agreement",
		Content:      "text",
		FormData:     rentalFormData(),
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := docSvc.Delete(doc.ID, "user-2"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign delete, got %v", err)
	}
	docs, err := docSvc.List("user-1", "")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("document must survive a foreign delete")
	}
}

func TestExportFilename(t *testing.T) {
	doc := &model.Document{Title: "Rental Agreement - 01/02/2026"}
	if got := ExportFilename(doc); got != "Rental Agreement - 01-02-2026.txt" {
		t.Fatalf("unexpected filename: %q", got)
	}

	if got := ExportFilename(&model.Document{}); got != "document.txt" {
		t.Fatalf("unexpected fallback filename: %q", got)
	}
}
