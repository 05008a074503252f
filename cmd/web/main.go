package main

import "ayurcare_backend/internal/app"

func main() {
	app.Run()
}
