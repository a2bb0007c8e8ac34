package consumer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(c *Consumer) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	query := `
		INSERT INTO consumers (id, name, phone_number, password)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(context.Background(), query,
		c.ID, c.Name, c.PhoneNumber, c.Password,
	)
	return err
}

func (r *PostgresRepository) ExistsByName(name string) (bool, error) {
	query := `SELECT 1 FROM consumers WHERE name=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, name)

	var exists int
	err := row.Scan(&exists)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) FindByName(name string) (*Consumer, error) {
	query := `
		SELECT id, name, phone_number, password
		FROM consumers WHERE name=$1
	`
	row := r.db.QueryRow(context.Background(), query, name)

	c := &Consumer{}
	if err := row.Scan(&c.ID, &c.Name, &c.PhoneNumber, &c.Password); err != nil {
		return nil, errors.New("consumer not found")
	}
	return c, nil
}
