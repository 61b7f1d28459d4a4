package database

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Migrator func(db *gorm.DB) error

type configuration struct {
	migrations []Migrator
}

type Configurator func(c *configuration)

func SetMigrations(ms ...Migrator) Configurator {
	return func(c *configuration) {
		c.migrations = ms
	}
}

func Connect(l logrus.FieldLogger, configurators ...Configurator) *gorm.DB {
	c := &configuration{}
	for _, configurator := range configurators {
		configurator(c)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		l.WithError(err).Fatalf("Unable to connect to database.")
	}

	for _, m := range c.migrations {
		if err = m(db); err != nil {
			l.WithError(err).Fatalf("Unable to migrate database.")
		}
	}
	return db
}
