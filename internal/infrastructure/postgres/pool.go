package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Gestion-api/pkg/config"
)

// NewPool crea un pool de conexiones PostgreSQL usando la configuración de la
// app. El arranque reintenta el ping inicial un número acotado de veces con
// backoff fijo y devuelve el error tipado del último intento: la lógica de
// reconexión pertenece al arranque del proceso, nunca a los handlers.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Registrar codec para NUMERIC/DECIMAL -> shopspring/decimal en todas
	// las conexiones del pool.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}

	attempts := cfg.ConnectAttempts
	if attempts <= 0 {
		attempts = 1
	}
	backoff := cfg.ConnectBackoff
	if backoff <= 0 {
		backoff = 2 * time.Second
	}

	var pingErr error
	for i := 1; i <= attempts; i++ {
		pingErr = pool.Ping(ctx)
		if pingErr == nil {
			return pool, nil
		}
		if i < attempts {
			select {
			case <-ctx.Done():
				pool.Close()
				return nil, fmt.Errorf("ping DB: %w", ctx.Err())
			case <-time.After(backoff):
			}
		}
	}
	pool.Close()
	return nil, fmt.Errorf("ping DB tras %d intentos: %w", attempts, pingErr)
}
