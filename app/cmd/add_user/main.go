package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/code-differently/cs-25-2-team6-sub003/app/config"
	"github.com/code-differently/cs-25-2-team6-sub003/app/database"
	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

func main() {
	email := flag.String("email", "", "email address for the new user")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	role := flag.String("role", "admin", "role to grant")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: add_user -email <email> -password <password> [-first <name>] [-last <name>] [-role <role>]")
	}

	config.Load()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), 14)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Email:     *email,
		Password:  string(hashed),
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(db, user, *role); err != nil {
		log.Fatal("Error creating user: ", err)
	}

	fmt.Printf("User created successfully: %s %s (%s) role=%s\n",
		user.FirstName, user.LastName, user.Email, *role)
}
