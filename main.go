package main

import (
	"flag"

	"snapFeed/auth"
	"snapFeed/crud"
	"snapFeed/http"
	"snapFeed/logger"
	"snapFeed/storage"
)

// main is the app's entry point.
func main() {
	// Check if the flag "-prod" has been provided. It means that we're running in production.
	productionBool := flag.Bool("prod", false, "Provide this flag in production to ensure that a .config.json file is provided before the application starts.")
	flag.Parse()

	// Load configuration from a .config.json file plus environment overrides.
	// If *productionBool evaluates to true, the .config.json file is required
	// and the app will panic if no file is found.
	config := LoadConfig(*productionBool)
	logger.Init(config.Env)

	// Open a database connection and execute migrations.
	db := NewDB(config.Database.ConnectionInfo())
	err := Open(db, config.IsProd())
	must(err)
	defer Close(db)
	err = AutoMigrate(db)
	must(err)

	// Start the crud services.
	services, err := crud.NewServices(
		db.Gorm,
		crud.WithUser(config.Pepper),
		crud.WithPost(),
		crud.WithComment(),
		crud.WithLike(),
		crud.WithFollow(),
		crud.WithFeed(),
	)
	must(err)

	// The filesystem image store and the token signer.
	images := storage.NewImageService()
	tokens := auth.NewTokenManager(config.JWTSecret)

	// Set up a webserver.
	server := http.NewServer(
		services.User,
		services.Post,
		services.Comment,
		services.Like,
		services.Follow,
		services.Feed,
		images,
		tokens,
	)

	// Serve the app.
	must(server.Run(config.Port))
}

// must is a little helper for shortening the panic instruction.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
