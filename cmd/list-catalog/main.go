package main

import (
	"fmt"

	"github.com/bytewave/siteapi/internal/catalog"
)

func main() {
	fmt.Println("Service catalogue:")
	fmt.Println()
	for _, cat := range catalog.Categories() {
		fmt.Printf("%s\n", cat.Title)
		for _, comp := range cat.Components {
			fmt.Printf("  %-24s %s - %s\n", comp.ID, comp.Name, comp.Description)
		}
		fmt.Println()
	}
	fmt.Println("Use a component id with cmd/send-quote, e.g.:")
	fmt.Println("  go run cmd/send-quote/main.go -name \"Jane Doe\" -email jane@example.com -items logo-design:2,web-app:1")
}
