package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/store"
)

func main() {
	resetCmd := flag.NewFlagSet("reset-catalog", flag.ExitOnError)
	listCmd := flag.NewFlagSet("list-orders", flag.ExitOnError)
	listUser := listCmd.String("user", "", "Only show orders for this user id")

	if len(os.Args) < 2 {
		fmt.Println("expected 'reset-catalog' or 'list-orders' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "reset-catalog":
		resetCmd.Parse(os.Args[2:])
		resetCatalog()
	case "list-orders":
		listCmd.Parse(os.Args[2:])
		listOrders(*listUser)
	default:
		fmt.Println("expected 'reset-catalog' or 'list-orders' subcommand")
		os.Exit(1)
	}
}

func openStore() *store.Store {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./walkin.db"
	}

	db, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	return db
}

// resetCatalog restores the built-in seed catalog, discarding any admin
// edits. Users and orders are untouched.
func resetCatalog() {
	db := openStore()
	if err := db.SaveProducts(store.DefaultCatalog()); err != nil {
		log.Fatalf("Failed to reset catalog: %v", err)
	}
	fmt.Println("Catalog reset to defaults.")
}

func listOrders(userID string) {
	db := openStore()

	orders, err := db.Orders()
	if err != nil {
		log.Fatalf("Failed to read orders: %v", err)
	}

	for _, o := range orders {
		if userID != "" && o.UserID != userID {
			continue
		}
		fmt.Printf("%s  %s  %-10s  $%.2f  %d item(s)\n", o.ID, o.Date, o.UserID, o.Total, len(o.Items))
	}
}
