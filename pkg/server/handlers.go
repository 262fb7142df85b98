package server

import (
	"SketchShare/handler"
)

type Handlers struct {
	Auth   *handler.Auth
	Post   *handler.Post
	Report *handler.Report
}
