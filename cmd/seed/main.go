package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/diacare/identity-service/config"
	"github.com/diacare/identity-service/pkg/passhash"
	"github.com/diacare/identity-service/pkg/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

func main() {
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	adminEmail := os.Getenv("EMAIL_ADMIN")
	if adminEmail == "" {
		log.Fatal("EMAIL_ADMIN is missing")
	}
	devPassword := os.Getenv("PASS_DEV")
	if devPassword == "" {
		log.Fatal("PASS_DEV is missing")
	}

	client, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Pool.Close()

	seedDefaultAccounts(client.Pool, adminEmail, devPassword)
}

func seedDefaultAccounts(db *pgxpool.Pool, adminEmail, devPassword string) {
	// short timeout for seeding operations
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hashed, err := passhash.HashPassword(devPassword)
	if err != nil {
		log.Fatalf("seedDefaultAccounts: hash password: %v", err)
	}

	type doctorSeed struct {
		Phone          string
		FullName       string
		License        string
		Specialization string
		Hospital       string
	}

	type patientSeed struct {
		Phone        string
		FullName     string
		Gender       string
		DateOfBirth  string
		DiabetesType string
	}

	doctors := []doctorSeed{
		{Phone: "0901111111", FullName: "Dr. Strange", License: "DOC-001", Specialization: "Endocrinology", Hospital: "Cho Ray Hospital"},
		{Phone: "0902222222", FullName: "Dr. House", License: "DOC-002", Specialization: "Nutrition", Hospital: "University Medical Center"},
	}

	patients := []patientSeed{
		{Phone: "0983333333", FullName: "Nguyen Van A", Gender: "MALE", DateOfBirth: "1990-01-01", DiabetesType: "TYPE_2"},
		{Phone: "0984444444", FullName: "Tran Thi B", Gender: "FEMALE", DateOfBirth: "1995-05-20", DiabetesType: "GDM"},
		{Phone: "0985555555", FullName: "Le Van C", Gender: "MALE", DateOfBirth: "1985-12-12", DiabetesType: "TYPE_1"},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Fatalf("seedDefaultAccounts: begin tx: %v", err)
	}
	// ensure rollback if commit doesn't happen
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	log.Println("cleaning existing data...")
	for _, table := range []string{"doctors", "patients", "users"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Fatalf("seedDefaultAccounts: clean %s: %v", table, err)
		}
	}

	log.Println("creating admin...")
	if _, err := tx.Exec(ctx, `
		INSERT INTO users (email, password_hash, role, is_active)
		VALUES ($1, $2, 'ADMIN', TRUE)`,
		adminEmail, hashed,
	); err != nil {
		log.Fatalf("seedDefaultAccounts: insert admin: %v", err)
	}

	log.Println("creating doctors...")
	for _, d := range doctors {
		var userID string
		if err := tx.QueryRow(ctx, `
			INSERT INTO users (phone_number, password_hash, role, is_active)
			VALUES ($1, $2, 'DOCTOR', TRUE)
			RETURNING id`,
			d.Phone, hashed,
		).Scan(&userID); err != nil {
			log.Fatalf("seedDefaultAccounts: insert doctor user %s: %v", d.Phone, err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO doctors (user_id, full_name, license_number, specialization, hospital)
			VALUES ($1, $2, $3, $4, $5)`,
			userID, d.FullName, d.License, d.Specialization, d.Hospital,
		); err != nil {
			log.Fatalf("seedDefaultAccounts: insert doctor profile %s: %v", d.License, err)
		}
	}

	log.Println("creating patients...")
	for _, p := range patients {
		var userID string
		if err := tx.QueryRow(ctx, `
			INSERT INTO users (phone_number, password_hash, role, is_active)
			VALUES ($1, $2, 'PATIENT', TRUE)
			RETURNING id`,
			p.Phone, hashed,
		).Scan(&userID); err != nil {
			log.Fatalf("seedDefaultAccounts: insert patient user %s: %v", p.Phone, err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO patients (user_id, full_name, gender, date_of_birth, diabetes_type)
			VALUES ($1, $2, $3::gender, $4::date, $5::diabetes_type)`,
			userID, p.FullName, p.Gender, p.DateOfBirth, p.DiabetesType,
		); err != nil {
			log.Fatalf("seedDefaultAccounts: insert patient profile %s: %v", p.Phone, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("seedDefaultAccounts: commit: %v", err)
	}

	log.Println("seeding completed")
	log.Printf("admin email: %s", adminEmail)
	log.Println("doctor phones: 0901111111, 0902222222")
	log.Println("patient phones: 0983333333, 0984444444, 0985555555")
}
