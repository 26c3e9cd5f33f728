package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/fogleman/ease"

	"github.com/matt-g-everett/motion/anim"
)

// Api serves the control pages and a headless sampling endpoint for
// previewing animation curves.
type Api struct {
	presets map[string]func() *anim.Animation
}

type sampleResult struct {
	Value interface{} `json:"value"`
	Done  bool        `json:"done"`
}

// NewApi creates an instance of an Api object.
func NewApi() *Api {
	a := new(Api)
	a.presets = map[string]func() *anim.Animation{
		"fade": func() *anim.Animation {
			return anim.New(anim.Options{
				Keyframes: []anim.Value{0.0, 100.0},
				Duration:  1000,
				Ease:      ease.InOutQuad,
			})
		},
		"bounce": func() *anim.Animation {
			return anim.New(anim.Options{
				Keyframes: []anim.Value{0.0, 100.0, 60.0, 100.0},
				Duration:  1200,
				Ease:      ease.OutCubic,
			})
		},
		"settle": func() *anim.Animation {
			return anim.New(anim.Options{
				Keyframes: []anim.Value{0.0, 100.0},
				Type:      anim.Spring,
			})
		},
		"fling": func() *anim.Animation {
			return anim.New(anim.Options{
				Keyframes: []anim.Value{0.0},
				Type:      anim.Decay,
				Decay:     anim.DecayOptions{Velocity: 800},
			})
		},
	}
	return a
}

func (a *Api) handleSample(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	build, ok := a.presets[name]
	if !ok {
		http.Error(w, "unknown animation", http.StatusNotFound)
		return
	}

	t, err := strconv.ParseFloat(r.URL.Query().Get("t"), 64)
	if err != nil || t < 0 {
		http.Error(w, "bad time", http.StatusBadRequest)
		return
	}

	state := build().Sample(t, false)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sampleResult{Value: state.Value, Done: state.Done})
}

func (a *Api) Serve() {
	fs := http.FileServer(http.Dir("client/dist"))
	http.Handle("/", fs)
	http.HandleFunc("/sample", a.handleSample)

	log.Println("Listening...")
	http.ListenAndServe(":3000", nil)
}
