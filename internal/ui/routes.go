package ui

import (
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"github.com/varsilias/openclaw-setup/internal/buildinfo"
	"github.com/varsilias/openclaw-setup/internal/osdetect"
	"github.com/varsilias/openclaw-setup/internal/platform"
	"github.com/varsilias/openclaw-setup/internal/widget"
)

// Assets are the file trees served under /static/ and /scripts/.
type Assets struct {
	Static  fs.FS
	Scripts fs.FS
}

func RegisterRoutes(mux chi.Router, u *UI, assets Assets) {
	mux.Get("/", u.Home)
	mux.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(assets.Static))))
	mux.Handle("/scripts/*", http.StripPrefix("/scripts/", downloads(http.FileServer(http.FS(assets.Scripts)))))
}

type offerView struct {
	osdetect.Offer
	Instructions template.HTML
}

type homeView struct {
	Welcome   template.HTML
	Privacy   template.HTML
	Offer     offerView
	Greeting  string
	LostTrain string
	Version   string
}

// Home renders the landing page with the installer offer for the visitor's OS.
func (u *UI) Home(w http.ResponseWriter, r *http.Request) {
	offer := osdetect.NewDetector(platform.FromRequest(r)).Offer()

	view := homeView{
		Welcome:   u.mdHTML(welcomeMD),
		Privacy:   u.mdHTML(privacyMD),
		Offer:     offerView{Offer: offer},
		Greeting:  widget.Greeting,
		LostTrain: widget.LostTrain,
		Version:   buildinfo.Version,
	}
	if offer.Enabled {
		view.Offer.Instructions = u.mdHTML(instructionsMD(offer))
	}

	// the offer depends on the User-Agent
	w.Header().Set("Vary", "User-Agent")
	u.render(w, "home.html", view, http.StatusOK)
}

// downloads forces a save dialog for installer scripts.
func downloads(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if name := path.Base(r.URL.Path); name != "." && name != "/" {
			w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
		}
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
