package migration

import (
	"fmt"
	"path"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func newMigrate(sourceURL string, dsn string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func migrateUp(sourceURL string, dsn string) {
	m := newMigrate(sourceURL, dsn)
	err := m.Up()
	if err != nil && err != migrate.ErrNoChange {
		panic(err)
	}
}

// MigrateUpForTesting migrates the test database to the latest version
func MigrateUpForTesting(rootDir string, dsn string) {
	migrateUp("file://"+path.Join(rootDir, "migrations"), dsn)
}

// MigrateCommand returns the root command for managing schema migrations
func MigrateCommand(dsn string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "migrate",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "migrate up to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			migrateUp("file://migrations", dsn)
			fmt.Println("Migrated up successfully")
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "migrate down a single step",
		Run: func(cmd *cobra.Command, args []string) {
			m := newMigrate("file://migrations", dsn)
			err := m.Steps(-1)
			if err != nil {
				panic(err)
			}
			fmt.Println("Migrated down successfully")
		},
	}

	forceCmd := &cobra.Command{
		Use:   "force [version]",
		Short: "force the schema version without running migrations",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}

			m := newMigrate("file://migrations", dsn)
			err = m.Force(version)
			if err != nil {
				panic(err)
			}
			fmt.Println("Forced version:", version)
		},
	}

	rootCmd.AddCommand(upCmd, downCmd, forceCmd)
	return rootCmd
}
