package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "imagectl",
		Usage: "Run the resizer and cleaner outside Lambda",
		Commands: []*cli.Command{
			{
				Name:      "resize",
				Usage:     "Resize one or more objects as if they had just been uploaded",
				ArgsUsage: "KEY...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "bucket",
						Usage:    "Bucket holding the source objects",
						Required: true,
						EnvVars:  []string{"SOURCE_BUCKET"},
					},
				},
				Before: bootstrap,
				After:  shutdown,
				Action: runResize,
			},
			{
				Name:   "clean",
				Usage:  "Delete every original and resized image",
				Before: bootstrap,
				After:  shutdown,
				Action: runClean,
			},
			{
				Name:   "serve",
				Usage:  "Accept bucket notifications over HTTP (MinIO webhook target)",
				Before: bootstrap,
				After:  shutdown,
				Action: runServe,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
