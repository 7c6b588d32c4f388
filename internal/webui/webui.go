// Package webui serves the embedded widget page: the exercise form and
// the daily chart, consuming the JSON API of the main server.
package webui

import (
	"embed"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/oliverhees/reptally/pkg"
)

//go:embed static/index.html
var static embed.FS

type Handler struct {
	page []byte
}

func NewHandler() (*Handler, error) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		return nil, err
	}
	return &Handler{page: page}, nil
}

func (handler *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	log.Tracef("serving widget page to %s", r.RemoteAddr)
	pkg.WriteResponseBytesOK(w, pkg.ContentType.HTML, handler.page)
}
