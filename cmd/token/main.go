package main

import (
	"flag"
	"fmt"
	"os"

	"codeberg.org/moneyapi/server/internal/auth"
	"codeberg.org/moneyapi/server/internal/logger"
	"github.com/joho/godotenv"
)

// prints a bearer token for calling the write endpoints locally
func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found")
	}

	userID := flag.String("user", "dev-user", "user id to put in the token")
	email := flag.String("email", "dev@moneyapi.local", "email to put in the token")
	flag.Parse()

	token, err := auth.GenerateJWT(os.Getenv("JWT_SECRET"), *userID, *email)
	if err != nil {
		logger.Fatal("failed to generate JWT", "error", err)
	}

	fmt.Printf("export TEST_TOKEN=\"%s\"\n", token)
}
