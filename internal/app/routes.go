package app

import (
	"hash/maphash"
	"math/rand/v2"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/minefield/minefield-server/internal/config"
	"github.com/minefield/minefield-server/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) router() *mux.Router {
	router := mux.NewRouter()
	if base := config.BasePath(); base != "" {
		router = router.PathPrefix(base).Subrouter()
	}

	b := handlers.NewBoardHandler(a.logger, a.db, a.ws, createRand())
	router.Methods("POST").Path("/board").HandlerFunc(b.Create)
	boardRouter := router.PathPrefix("/board").Subrouter()
	boardRouter.Methods("GET").Path("/highscores").HandlerFunc(b.Highscores)
	boardRouter.Methods("GET").Path("/{id}/connect").HandlerFunc(b.ConnectWS)
	boardRouter.Methods("POST").Path("/{id}/move").HandlerFunc(b.Move)
	boardRouter.Methods("POST").Path("/{id}/rebuild").HandlerFunc(b.Rebuild)
	boardRouter.Methods("POST").Path("/{id}/resize").HandlerFunc(b.Resize)
	boardRouter.Methods("GET").Path("/{id}").HandlerFunc(b.Fetch)

	auth := handlers.NewAuth(a.logger, a.db, a.cookies, a.jwt)
	router.Methods("GET").Path("/status").HandlerFunc(auth.Status)
	router.Methods("POST").Path("/register").HandlerFunc(auth.Register)
	router.Methods("POST").Path("/login").HandlerFunc(auth.Login)
	router.Methods("POST").Path("/logout").HandlerFunc(auth.Logout)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return router
}
