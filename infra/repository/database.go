package repository

import (
	"errors"

	"github.com/novabank/accounts/infra/repository/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the Postgres connection and migrates the aggregate
// tables. TranslateError is required so driver uniqueness violations surface
// as gorm.ErrDuplicatedKey and map to domain.ErrAlreadyExists.
func NewDBConnection(databaseUrl string) (*gorm.DB, error) {
	if databaseUrl == "" {
		return nil, errors.New("database url is not set")
	}
	db, err := gorm.Open(postgres.Open(databaseUrl), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.Customer{}, &model.Account{}); err != nil {
		return nil, err
	}
	return db, nil
}
