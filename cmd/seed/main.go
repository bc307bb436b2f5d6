package main

import (
	"errors"
	"fmt"
	"os"

	"postapi/config"
	"postapi/database"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func getSeeder() (*database.Seeder, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Migrate(db); err != nil {
		database.Close(db)
		return nil, nil, err
	}

	return database.NewSeeder(db, database.DummyPosts), db, nil
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending seeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			seeder, db, err := getSeeder()
			if err != nil {
				return err
			}
			defer database.Close(db)

			applied, err := seeder.Up()
			for _, name := range applied {
				fmt.Printf("Applied seed: %s\n", name)
			}
			if err != nil {
				return err
			}
			if len(applied) == 0 {
				fmt.Println("No pending seeds.")
			}
			return nil
		},
	}
}

func downCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Revert the last applied seed",
		RunE: func(cmd *cobra.Command, args []string) error {
			seeder, db, err := getSeeder()
			if err != nil {
				return err
			}
			defer database.Close(db)

			reverted, err := seeder.Down()
			if errors.Is(err, database.ErrNothingToRevert) {
				fmt.Println("No seeds to revert.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("Reverted seed: %s\n", reverted)
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending seeds",
		RunE: func(cmd *cobra.Command, args []string) error {
			seeder, db, err := getSeeder()
			if err != nil {
				return err
			}
			defer database.Close(db)

			statuses, err := seeder.Status()
			if err != nil {
				return err
			}

			for _, s := range statuses {
				if s.Applied {
					fmt.Printf("[applied %s] %s %s\n", s.AppliedAt.Format("2006-01-02 15:04:05"), s.Version, s.Name)
				} else {
					fmt.Printf("[pending] %s %s\n", s.Version, s.Name)
				}
			}
			return nil
		},
	}
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample posts into the database",
	}

	rootCmd.AddCommand(upCmd(), downCmd(), statusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
