package repository

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 100
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return &Repository{
		db: db,
	}, nil
}

// NewWithDB - репозиторий поверх готового соединения (используется в тестах)
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}

// Page - параметры пагинации для списочных запросов
type Page struct {
	Number int
	Size   int
}

// apply навешивает offset/limit на запрос, дефолты 1/100
func (p Page) apply(query *gorm.DB) *gorm.DB {
	number := p.Number
	if number < 1 {
		number = DefaultPageNumber
	}
	size := p.Size
	if size < 1 {
		size = DefaultPageSize
	}
	return query.Offset((number - 1) * size).Limit(size)
}
