package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/animator/entity"
)

// State is the JSON body served on /state.
type State struct {
	Name    string  `json:"name"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Colour  string  `json:"colour"`
	Updated string  `json:"updated,omitempty"`
}

// Api serves the entity state and the client pages.
type Api struct {
	entity *entity.Animated
}

// NewApi creates an instance of an Api.
func NewApi(e *entity.Animated) *Api {
	a := new(Api)
	a.entity = e
	return a
}

// Handler returns the HTTP routes.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/state", a.handleState)
	mux.Handle("/", http.FileServer(http.Dir("client/dist")))
	return mux
}

func (a *Api) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s := State{Name: a.entity.Name(), Colour: "#000000"}
	s.X, s.Y = a.entity.Position()
	if c, ok := a.entity.Get("colour").(colorful.Color); ok {
		s.Colour = c.Clamped().Hex()
	}
	if t, ok := a.entity.Get("now").(time.Time); ok {
		s.Updated = t.UTC().Format(time.RFC3339Nano)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s); err != nil {
		log.Println(err)
	}
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	log.Printf("Listening on %s...", addr)
	return http.ListenAndServe(addr, a.Handler())
}
