package handlers

import (
	"resto-analytics-service/internal/config"
	"resto-analytics-service/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Handler struct {
	DB      *pgxpool.Pool
	Logger  *zap.Logger
	Config  config.Config
	Archive *storage.ObjectStore
}
