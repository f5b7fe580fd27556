package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM employees").Error; err != nil {
				log.Fatalf("failed to clear employees: %v", err)
			}
			if err := db.Exec("DELETE FROM users").Error; err != nil {
				log.Fatalf("failed to clear users: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		devEmail := "devuser@gmail.com"
		devName := "Dev User"
		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE email = ?", devEmail).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("dev user already exists, skipping user seed")
		} else {
			if err := db.Exec("INSERT INTO users (email, name, password_hash, created_at, updated_at) VALUES (?, ?, ?, now(), now())", devEmail, devName, string(hash)).Error; err != nil {
				log.Fatalf("failed to insert dev user: %v", err)
			}
			fmt.Println("Seeded dev user:", devEmail)
		}

		var devUserID int64
		if err := db.Raw("SELECT id FROM users WHERE email = ?", devEmail).Row().Scan(&devUserID); err != nil {
			log.Fatalf("failed to lookup dev user id: %v", err)
		}

		employees := []struct {
			Name        string
			Email       string
			Department  string
			Designation string
			Salary      int64
		}{
			{"Alice Morgan", "alicemorgan@gmail.com", "Engineering", "Developer", 75000},
			{"Bob Stone", "bobstonework@gmail.com", "Finance", "Accountant", 60000},
			{"Carol Reyes", "carolreyeshr@gmail.com", "Human Resources", "Manager", 82000},
		}

		for _, e := range employees {
			var exists int
			if err := db.Raw("SELECT 1 FROM employees WHERE owner_user_id = ? AND email = ?", devUserID, e.Email).Row().Scan(&exists); err == nil {
				continue
			}

			if err := db.Exec(
				"INSERT INTO employees (owner_user_id, name, email, department, designation, salary, joining_date, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, now(), now(), now())",
				devUserID, e.Name, e.Email, e.Department, e.Designation, e.Salary,
			).Error; err != nil {
				log.Fatalf("failed to insert employee %s: %v", e.Name, err)
			}
			fmt.Println("Seeded employee:", e.Name)
		}

		fmt.Println("Seeding complete")
	},
}
