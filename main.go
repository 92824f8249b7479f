package main

import (
	"log"
	"net/http"
	"os"

	"mini-diary/db"
	"mini-diary/handlers"
	appmw "mini-diary/middleware"
	"mini-diary/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

// maxBodySize leaves room for base64-encoded profile pictures.
const maxBodySize = 20 << 20

func main() {

	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file loaded:", err)
	}

	database, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	users := store.NewUserStore(database)
	entries := store.NewDiaryStore(database)

	auth := &handlers.AuthHandler{Users: users}
	diary := &handlers.DiaryHandler{Entries: entries}
	profile := &handlers.ProfileHandler{Users: users}

	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(appmw.CORS)
	r.Use(chimw.RequestSize(maxBodySize))

	r.Post("/api/signup", auth.Signup)
	r.Post("/api/login", auth.Login)

	r.Post("/api/diary", diary.Create)
	r.Get("/api/diary", diary.List)
	r.Put("/api/diary/{id}", diary.Update)
	r.Delete("/api/diary/{id}", diary.Delete)

	r.Get("/api/profile/{username}", profile.Get)
	r.Put("/api/profile/{username}", profile.Update)

	// Legacy routes kept for the older frontend.
	r.Get("/profile/{username}", profile.GetFull)
	r.Put("/profile/{username}", profile.UpdateFull)

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "../Frontend"
	}
	r.Handle("/*", http.FileServer(http.Dir(staticDir)))

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Println("Server running on http://localhost:" + port)
	http.ListenAndServe(":"+port, r)
}
