package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/thepole/flyerboard-backend/internal/app"
)

func main() {
	// Local development convenience; absent .env is fine.
	_ = godotenv.Load()

	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
