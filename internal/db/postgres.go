package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// BUSINESSES
	// -------------------------------
	businessTableSQL := `
		CREATE TABLE IF NOT EXISTS businesses (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			address TEXT NOT NULL,
			phone VARCHAR(20) NOT NULL,
			email VARCHAR(255) NOT NULL,
			license_number VARCHAR(100) UNIQUE NOT NULL,
			business_type VARCHAR(100) NOT NULL,
			owner_name VARCHAR(255) NOT NULL,
			trade_license VARCHAR(100) NOT NULL,
			gst_number VARCHAR(100) NOT NULL,
			fire_safety_cert VARCHAR(100) NOT NULL,
			liquor_license VARCHAR(100),
			music_license VARCHAR(100),
			logo_url VARCHAR(500),
			owner_photo_url VARCHAR(500),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, businessTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// TEAM MEMBERS
	// -------------------------------
	teamMembersSQL := `
		CREATE TABLE IF NOT EXISTS team_members (
			id SERIAL PRIMARY KEY,
			business_id INT NOT NULL REFERENCES businesses(id),
			name VARCHAR(255) NOT NULL,
			role VARCHAR(100) NOT NULL,
			photo_url VARCHAR(500),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, teamMembersSQL); err != nil {
		return err
	}

	// -------------------------------
	// FACILITY PHOTOS
	// -------------------------------
	facilityPhotosSQL := `
		CREATE TABLE IF NOT EXISTS facility_photos (
			id SERIAL PRIMARY KEY,
			business_id INT NOT NULL REFERENCES businesses(id),
			area_name VARCHAR(255) NOT NULL,
			photo_url VARCHAR(500),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, facilityPhotosSQL); err != nil {
		return err
	}

	// -------------------------------
	// CERTIFICATIONS
	// -------------------------------
	certificationsSQL := `
		CREATE TABLE IF NOT EXISTS certifications (
			id SERIAL PRIMARY KEY,
			business_id INT NOT NULL REFERENCES businesses(id),
			type VARCHAR(100) NOT NULL,
			number VARCHAR(100) NOT NULL,
			issue_date DATE,
			expiry_date DATE,
			status VARCHAR(50) NOT NULL DEFAULT 'Active',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, certificationsSQL); err != nil {
		return err
	}

	// -------------------------------
	// LAB REPORTS
	// -------------------------------
	labReportsSQL := `
		CREATE TABLE IF NOT EXISTS lab_reports (
			id SERIAL PRIMARY KEY,
			business_id INT NOT NULL REFERENCES businesses(id),
			report_date DATE NOT NULL,
			test_type VARCHAR(100) NOT NULL,
			result VARCHAR(255) NOT NULL,
			notes TEXT,
			status VARCHAR(50) NOT NULL DEFAULT 'Pending',
			report_url VARCHAR(500),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, labReportsSQL); err != nil {
		return err
	}

	// -------------------------------
	// HYGIENE RATINGS (written by the external inspection process)
	// -------------------------------
	hygieneRatingsSQL := `
		CREATE TABLE IF NOT EXISTS hygiene_ratings (
			id SERIAL PRIMARY KEY,
			business_id INT NOT NULL REFERENCES businesses(id),
			rating INT NOT NULL,
			inspection_date DATE NOT NULL,
			inspector_name VARCHAR(255),
			notes TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, hygieneRatingsSQL); err != nil {
		return err
	}

	// -------------------------------
	// REVIEWS (written by the consumer review flow)
	// -------------------------------
	reviewsSQL := `
		CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			business_id INT NOT NULL REFERENCES businesses(id),
			consumer_name VARCHAR(255),
			rating INT NOT NULL,
			comment TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, reviewsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CONSUMERS
	// -------------------------------
	consumersSQL := `
		CREATE TABLE IF NOT EXISTS consumers (
			id UUID PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			phone_number VARCHAR(20) NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, consumersSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
