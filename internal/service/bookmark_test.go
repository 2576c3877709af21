package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/nyayaai/backend/internal/model"
	"github.com/nyayaai/backend/internal/repository"
	"gorm.io/gorm"
)

func newBookmarkService(t *testing.T) *BookmarkService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(&model.Bookmark{}); err != nil {
		t.Fatalf("migrate error: %v", err)
	}
	return NewBookmarkService(repository.NewBookmarkRepository(db))
}

func TestBookmarkToggleRoundTrip(t *testing.T) {
	svc := newBookmarkService(t)

	action, err := svc.Toggle("user-1", "tenant-rights")
	if err != nil || action != BookmarkAdded {
		t.Fatalf("first toggle: action = %s err = %v", action, err)
	}

	bms, err := svc.List("user-1")
	if err != nil || len(bms) != 1 || bms[0].ArticleID != "tenant-rights" {
		t.Fatalf("list after add: %v %+v", err, bms)
	}

	action, err = svc.Toggle("user-1", "tenant-rights")
	if err != nil || action != BookmarkRemoved {
		t.Fatalf("second toggle: action = %s err = %v", action, err)
	}

	bms, err = svc.List("user-1")
	if err != nil || len(bms) != 0 {
		t.Fatalf("list after remove: %v %+v", err, bms)
	}
}

func TestBookmarksAreOwnerScoped(t *testing.T) {
	svc := newBookmarkService(t)

	if _, err := svc.Toggle("user-1", "consumer-rights"); err != nil {
		t.Fatalf("Toggle error: %v", err)
	}

	// Same article, different owner: an independent add, not a removal.
	action, err := svc.Toggle("user-2", "consumer-rights")
	if err != nil || action != BookmarkAdded {
		t.Fatalf("other owner's toggle: action = %s err = %v", action, err)
	}

	bms, err := svc.List("user-1")
	if err != nil || len(bms) != 1 {
		t.Fatalf("owner list: %v %+v", err, bms)
	}
}
