package main

import (
	"carteira/internal/util"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	secrets, err := util.LoadSecrets()
	if err != nil {
		log.Fatal(err)
	}

	sslMode := "disable"
	if secrets.Db.EnableSsl {
		sslMode = "require"
	}

	m, err := migrate.New(
		"file://migrations",
		fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			secrets.Db.User,
			secrets.Db.Password,
			secrets.Db.Host,
			secrets.Db.Port,
			secrets.Db.Database,
			sslMode,
		),
	)
	if err != nil {
		log.Fatal(err)
	}

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	default:
		log.Fatalf("unknown direction %q, want up or down", direction)
	}

	if err != nil && err != migrate.ErrNoChange {
		log.Fatal(err)
	}
}
