package repository

import (
	"errors"
	"testing"

	"github.com/nyayaai/backend/internal/model"
)

func TestTemplateRepositoryGetBySlug(t *testing.T) {
	db := openTestDB(t)
	repo := NewTemplateRepository(db)

	tpl := &model.Template{
		Slug:     "rental-agreement",
		Title:    "Rental Agreement",
		Category: "Property",
		Fields: model.FieldDefs{
			{ID: "landlord_name", Label: "Landlord Name", Type: model.FieldTypeText, Required: true},
		},
		Body: "Agreement between {landlord_name}.",
	}
	if err := repo.Create(tpl); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	loaded, err := repo.GetBySlug("rental-agreement")
	if err != nil {
		t.Fatalf("GetBySlug error: %v", err)
	}
	if loaded.Title != "Rental Agreement" {
		t.Fatalf("unexpected title: %s", loaded.Title)
	}
	if len(loaded.Fields) != 1 || loaded.Fields[0].ID != "landlord_name" {
		t.Fatalf("fields did not survive the JSON column round trip: %+v", loaded.Fields)
	}

	if _, err := repo.GetBySlug("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTemplateRepositorySearchAndCategory(t *testing.T) {
	db := openTestDB(t)
	repo := NewTemplateRepository(db)

	seed := []*model.Template{
		{Slug: "rental-agreement", Title: "Rental Agreement", Description: "Residential rental", Category: "Property", SortOrder: 1},
		{Slug: "nda", Title: "Non-Disclosure Agreement", Description: "Protect confidential information", Category: "Business", SortOrder: 2},
		{Slug: "legal-notice", Title: "Legal Notice", Description: "Formal notice", Category: "Legal", SortOrder: 3},
	}
	for _, tpl := range seed {
		if err := repo.Create(tpl); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	byCat, err := repo.ListByCategory("Business")
	if err != nil {
		t.Fatalf("ListByCategory error: %v", err)
	}
	if len(byCat) != 1 || byCat[0].Slug != "nda" {
		t.Fatalf("unexpected category result: %+v", byCat)
	}

	// Case-insensitive substring match across title and description.
	found, err := repo.Search("CONFIDENTIAL")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(found) != 1 || found[0].Slug != "nda" {
		t.Fatalf("unexpected search result: %+v", found)
	}

	all, err := repo.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 3 || all[0].Slug != "rental-agreement" {
		t.Fatalf("expected sort_order ordering, got %+v", all)
	}
}
