package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/crowdfund-backend/internal/infrastructure/blob"
	"github.com/oksasatya/crowdfund-backend/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Everything here is set once during startup and read-only afterwards;
// the router auto-wires modules from these singletons.

var (
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	blobStore   blob.Store
	jwtManager  *helpers.JWTManager
)

func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetPGPool(p *pgxpool.Pool)    { pgPool = p }
func GetPGPool() *pgxpool.Pool     { return pgPool }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetBlobStore(s blob.Store)    { blobStore = s }
func GetBlobStore() blob.Store     { return blobStore }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager  { return jwtManager }
