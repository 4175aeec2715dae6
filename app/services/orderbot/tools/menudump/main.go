package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"CluckAI/app/services/orderbot/internal/menu"
)

// A tiny helper to dump the built-in menu catalog for ops review or import
// into a POS system.
// Usage:
//
//	go run ./app/services/orderbot/tools/menudump -format csv > menu.csv
//	go run ./app/services/orderbot/tools/menudump -format json -ingredients
func main() {
	format := flag.String("format", "csv", "output format: csv or json")
	ingredients := flag.Bool("ingredients", false, "include ingredient lists")
	flag.Parse()

	items := menu.NewCatalog().Items()

	switch *format {
	case "csv":
		w := csv.NewWriter(os.Stdout)
		_ = w.Write([]string{"name", "price"})
		for _, item := range items {
			_ = w.Write([]string{item.Name, strconv.FormatFloat(float64(item.PriceCents)/100, 'f', 2, 64)})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			log.Fatalf("write csv: %v", err)
		}
	case "json":
		if !*ingredients {
			for i := range items {
				items[i].Ingredients = nil
				items[i].Modifiable = nil
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(items); err != nil {
			log.Fatalf("encode json: %v", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", *format)
		os.Exit(2)
	}
}
