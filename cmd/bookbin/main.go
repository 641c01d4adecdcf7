package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/blackwell-systems/bookbin/internal/app"
)

// version is set at release time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	app.SetVersion(version)
	app.Execute()
}
