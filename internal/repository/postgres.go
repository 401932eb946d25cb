package repository

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/core-coin/fontis/internal/models"
	"github.com/core-coin/fontis/pkg/logger"
)

type PostgresDB struct {
	logger *logger.Logger

	Conn *gorm.DB
}

func NewPostgresDB(user, password, dbname, host string, port int, logger *logger.Logger) (models.Repository, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		host, user, password, dbname, port)

	// Configure GORM logger to suppress "record not found" messages
	gormLogger := gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // Use standard logger
		gormLogger.Config{
			SlowThreshold:             200 * time.Millisecond, // Log queries slower than this
			LogLevel:                  gormLogger.Warn,        // Only log warnings or errors
			IgnoreRecordNotFoundError: true,                   // Suppress "record not found" errors
			Colorful:                  true,                   // Enable colorful logs
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %s", err)
	}

	if err := db.AutoMigrate(&models.Token{}, &models.TokenTransfer{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate models: %s", err)
	}
	logger.Info("Successfully connected to PostgreSQL!")
	return &PostgresDB{Conn: db, logger: logger}, nil
}

func (db *PostgresDB) Close() error {
	sqlDB, err := db.Conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %s", err)
	}
	return sqlDB.Close()
}

func (db *PostgresDB) CreateToken(token *models.Token) error {
	if err := db.Conn.Create(token).Error; err != nil {
		return fmt.Errorf("failed to create token: %s", err)
	}

	return nil
}

func (db *PostgresDB) CreateTokenTransfer(transfer *models.TokenTransfer) error {
	if err := db.Conn.Create(transfer).Error; err != nil {
		return fmt.Errorf("failed to create token transfer: %s", err)
	}

	return nil
}

func (db *PostgresDB) GetTokenByAddress(address string) (*models.Token, error) {
	var token models.Token
	if err := db.Conn.Where("address = ?", address).First(&token).Error; err != nil {
		return nil, fmt.Errorf("failed to get token by address: %s", err)
	}

	return &token, nil
}

func (db *PostgresDB) GetTokenBySymbol(symbol string) (*models.Token, error) {
	var token models.Token
	if err := db.Conn.Where("symbol = ?", symbol).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get token by symbol: %s", err)
	}

	return &token, nil
}

func (db *PostgresDB) GetAllTokens() ([]*models.Token, error) {
	var tokens []*models.Token
	if err := db.Conn.Find(&tokens).Error; err != nil {
		return nil, fmt.Errorf("failed to get tokens: %s", err)
	}

	return tokens, nil
}

// GetNextAccess resolves the eligibility window for one identity dimension.
// No prior transfer yields a timestamp safely in the past; a failed lookup
// yields one a full window in the future so a broken read fails closed.
func (db *PostgresDB) GetNextAccess(field models.AccessField, value, tokenAddress string) time.Time {
	column := "ip"
	if field == models.FieldToAddress {
		column = "to_address"
	}

	var last models.TokenTransfer
	err := db.Conn.Where(column+" = ? AND token_address = ?", value, tokenAddress).
		Order("created_at DESC").
		First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Now().Add(-models.EligibilityWindow)
		}
		db.logger.Error("Failed to get next access ", "error ", err, "field ", field, "value ", value)
		return time.Now().Add(models.EligibilityWindow)
	}

	return time.Unix(last.CreatedAt, 0).Add(models.EligibilityWindow)
}
