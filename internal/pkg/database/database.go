package database

import (
	"github.com/glebarez/sqlite"
	"github.com/nyayaai/backend/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func InitDB(dbType, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch dbType {
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		// github.com/glebarez/sqlite is the pure-Go driver, no cgo needed.
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.Template{},
		&model.Document{},
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.CaseStory{},
		&model.ConsultationRequest{},
		&model.Bookmark{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
