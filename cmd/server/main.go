package main

import (
	"flag"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/merinm488/game-store/internal/ai"
	"github.com/merinm488/game-store/internal/controller"
	"github.com/merinm488/game-store/internal/middleware"
	"github.com/merinm488/game-store/internal/service"
	"github.com/merinm488/game-store/internal/storage"
)

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	origins := flag.String("origins", "http://localhost:5173", "allowed CORS origins, comma separated")
	dataDir := flag.String("data", "", "directory for the results store; empty disables the archive")
	difficulty := flag.String("difficulty", "medium", "default engine difficulty: easy, medium or hard")
	flag.Parse()

	defaultDifficulty, err := ai.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatalf("invalid -difficulty: %v", err)
	}

	var store *storage.Store
	if *dataDir != "" {
		store, err = storage.Open(*dataDir)
		if err != nil {
			log.Fatalf("open results store: %v", err)
		}
		defer store.Close()
		log.Printf("recording finished games in %s", *dataDir)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     *origins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	gameManager := service.NewGameManager(store)
	gameService := service.NewGameService(gameManager, store, defaultDifficulty)

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/load", gameController.LoadGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Delete("/:gameId", gameController.DeleteGame)
	gameRoutes.Get("/:gameId/fen", gameController.GetFEN)
	gameRoutes.Get("/:gameId/moves/:square", gameController.GetMoves)
	gameRoutes.Get("/:gameId/difficulty", gameController.GetDifficulty)
	gameRoutes.Put("/:gameId/difficulty", gameController.SetDifficulty)

	recordRoutes := api.Group("/records")
	recordRoutes.Get("/recent", gameController.GetRecentGames)
	recordRoutes.Get("/stats", gameController.GetStats)

	log.Fatal(app.Listen(*addr))
}
