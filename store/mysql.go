package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/abdulrahman-nisar/UpliftAI/utils"
)

// record is one stored document row. A row with a NULL doc is a reserved
// id that was never written; reads treat it as absent.
type record struct {
	Path  string `gorm:"type:varchar(255);primaryKey"`
	Scope string `gorm:"type:varchar(255);index"`
	Doc   datatypes.JSON
}

// MySQLStore backs the key-path contract with a single records table.
type MySQLStore struct {
	db *gorm.DB
}

// NewMySQLStore opens the database, configures the pool and migrates the
// records table.
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("migrating records table: %w", err)
	}

	return &MySQLStore{db: db}, nil
}

func (s *MySQLStore) Create(ctx context.Context, scope string) (string, error) {
	id := utils.GenerateID()
	rec := record{Path: Join(scope, id), Scope: scope}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", fmt.Errorf("reserving id under %s: %w", scope, err)
	}
	return id, nil
}

func (s *MySQLStore) Set(ctx context.Context, path string, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document at %s: %w", path, err)
	}

	scope, _ := splitPath(path)
	rec := record{Path: path, Scope: scope, Doc: datatypes.JSON(raw)}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("writing document at %s: %w", path, err)
	}
	return nil
}

func (s *MySQLStore) Get(ctx context.Context, path string) (Document, error) {
	var rec record
	err := s.db.WithContext(ctx).Where("path = ?", path).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading document at %s: %w", path, err)
	}
	if len(rec.Doc) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}

	var doc Document
	if err := json.Unmarshal(rec.Doc, &doc); err != nil {
		return nil, fmt.Errorf("decoding document at %s: %w", path, err)
	}
	return doc, nil
}

// Update is a read-merge-write: concurrent updates to one path race with
// last-write-wins, same as Set.
func (s *MySQLStore) Update(ctx context.Context, path string, fields Document) error {
	doc, err := s.Get(ctx, path)
	if err != nil {
		return err
	}
	for k, v := range fields {
		doc[k] = v
	}
	return s.Set(ctx, path, doc)
}

func (s *MySQLStore) Delete(ctx context.Context, path string) error {
	if _, err := s.Get(ctx, path); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Where("path = ?", path).Delete(&record{}).Error; err != nil {
		return fmt.Errorf("deleting document at %s: %w", path, err)
	}
	return nil
}

func (s *MySQLStore) List(ctx context.Context, scope string) (map[string]Document, error) {
	var recs []record
	err := s.db.WithContext(ctx).Where("scope = ?", scope).Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("listing scope %s: %w", scope, err)
	}

	docs := make(map[string]Document, len(recs))
	for _, rec := range recs {
		if len(rec.Doc) == 0 {
			continue
		}
		var doc Document
		if err := json.Unmarshal(rec.Doc, &doc); err != nil {
			return nil, fmt.Errorf("decoding document at %s: %w", rec.Path, err)
		}
		_, id := splitPath(rec.Path)
		docs[id] = doc
	}
	return docs, nil
}
