package main

import (
	"log"

	"github.com/joho/godotenv"

	"Taller/FiberConfig"
	"Taller/Models"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file, using environment defaults")
	}

	if err := Models.Connect(); err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer Models.Close()

	FiberConfig.FiberConfig()
}
