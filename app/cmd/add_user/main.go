package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"siconitcc/app/config"
	"siconitcc/app/database"
	"siconitcc/app/models"
)

// Bootstraps an account from the command line, typically the first admin:
//
//	go run ./app/cmd/add_user -email rector@colegio.edu.co -first Ana -last Diaz -password <pw> -roles admin
func main() {
	email := flag.String("email", "", "account email")
	first := flag.String("first", "", "first name")
	last := flag.String("last", "", "last name")
	password := flag.String("password", "", "initial password")
	roles := flag.String("roles", models.RoleAdmin, "comma-separated roles (admin,teacher,gestor)")
	flag.Parse()

	if *email == "" || *first == "" || *last == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	config.Load()
	db := config.GetDB()
	defer db.Close()

	user := &models.User{
		Email:     *email,
		FirstName: *first,
		LastName:  *last,
		Password:  *password,
	}

	if err := database.CreateUser(db, user, strings.Split(*roles, ",")...); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
