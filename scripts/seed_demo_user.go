package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/trannb/jobtrackr/pkg/auth"
)

func main() {
	fmt.Println("adding demo user into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	DSN := os.Getenv("DB_DSN")
	DEMO_EMAIL := os.Getenv("DEMO_EMAIL")
	DEMO_PASSWORD := os.Getenv("DEMO_PASSWORD")

	hash, err := auth.HashPassword(DEMO_PASSWORD)
	if err != nil {
		log.Fatalf("cannot hash password: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), DSN)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	id := uuid.New()
	query := `
		INSERT INTO users (id, email, display_name, password_hash)
		VALUES ($1, $2, 'Demo User', $3)
		ON CONFLICT (id) DO NOTHING
	`
	_, err = pool.Exec(context.Background(), query, id, DEMO_EMAIL, hash)
	if err != nil {
		log.Fatalf("cannot add user: %v", err)
	}

	profileQuery := `
		INSERT INTO profiles (user_id, first_name, last_name, email)
		VALUES ($1, 'Demo', 'User', $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err = pool.Exec(context.Background(), profileQuery, id, DEMO_EMAIL)
	if err != nil {
		log.Fatalf("cannot add profile: %v", err)
	}

	fmt.Printf("added demo user '%s' successfully!\n", DEMO_EMAIL)
}
