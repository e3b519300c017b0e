package di

import (
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"gorm.io/gorm"

	"contentshop/internal/common"
	"contentshop/internal/config"
	"contentshop/internal/content"
	"contentshop/internal/dbmongo"
	"contentshop/internal/dbmysql"
	"contentshop/internal/files"
	"contentshop/internal/recommend"
	"contentshop/internal/shop"
	"contentshop/internal/user"
)

// Application holds the assembled handlers plus the shared infrastructure
// main needs for serving and shutdown.
type Application struct {
	Config *config.Config
	Logger zerolog.Logger
	DB     *gorm.DB
	Mongo  *dbmongo.MongoClient
	Tokens *common.TokenManager

	Users    *user.Handler
	Contents *content.Handler
	Files    *files.Handler
	Recs     *recommend.Handler
	Shop     *shop.Handler

	ContentService content.ContentService
}

func ProvideLogger(cfg *config.Config) zerolog.Logger {
	return common.NewLogger(cfg)
}

// ProvideDB connects to MySQL and runs migrations.
func ProvideDB(cfg *config.Config, logger zerolog.Logger) (*gorm.DB, error) {
	db, err := dbmysql.NewMySQL(cfg)
	if err != nil {
		return nil, err
	}
	if err := dbmysql.Migrate(db); err != nil {
		return nil, err
	}
	logger.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.DatabaseName).
		Msg("mysql connected")
	return db, nil
}

func ProvideMongo(cfg *config.Config) (*dbmongo.MongoClient, error) {
	return dbmongo.NewMongoConnection(cfg)
}

func ProvideBlobStore(mc *dbmongo.MongoClient) *dbmongo.BlobStore {
	return dbmongo.NewBlobStore(mc)
}

func ProvideTokenManager(cfg *config.Config) *common.TokenManager {
	return common.NewTokenManager(cfg)
}

// ProvideChatClient returns nil when scoring is disabled; the relevance
// analyzer falls back to default scores in that case.
func ProvideChatClient(cfg *config.Config) recommend.ChatClient {
	if !cfg.Scoring.Enabled {
		return nil
	}
	return openai.NewClient(cfg.Scoring.OpenAIKey)
}

func ProvideRelevanceAnalyzer(client recommend.ChatClient, cfg *config.Config, logger zerolog.Logger) *recommend.RelevanceAnalyzer {
	return recommend.NewRelevanceAnalyzer(client, cfg.Scoring.Model, logger)
}
