// mktoken mints a short-lived HS256 token for local testing:
//
//	go run ./cmd/mktoken -uid u1 -name alice
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

func main() {
	uid := flag.String("uid", "", "user id (sub claim)")
	name := flag.String("name", "", "display name")
	picture := flag.String("picture", "", "avatar URL")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if *uid == "" {
		log.Fatal("-uid is required")
	}

	claims := jwt.MapClaims{
		"sub": *uid,
		"exp": time.Now().Add(*ttl).Unix(),
	}
	if *name != "" {
		claims["name"] = *name
	}
	if *picture != "" {
		claims["picture"] = *picture
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(signed)
}
