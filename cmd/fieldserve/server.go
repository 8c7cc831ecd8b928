package main

import (
	"bytes"
	"image/png"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"particle-field/config"
	"particle-field/field"
	"particle-field/frame"
	"particle-field/raster"
)

// server runs one field headlessly and serves its frames. Every touch of
// the field goes through ticker.Do so it stays on the frame goroutine.
type server struct {
	opts     config.Options
	ticker   *frame.Ticker
	viewport *frame.Viewport
	surface  *raster.Surface
	animator *field.Animator
}

type resizeRequest struct {
	Width  int `json:"width" binding:"required,min=1,max=8192"`
	Height int `json:"height" binding:"required,min=1,max=8192"`
}

func newServer(opts config.Options, width, height int, interval time.Duration) *server {
	s := &server{
		opts:     opts,
		ticker:   frame.NewTicker(interval),
		viewport: frame.NewViewport(width, height),
		surface:  raster.New(0, 0),
	}
	s.animator = field.NewAnimator(s.viewport, s.ticker, opts.Settings())
	return s
}

func (s *server) start() error {
	s.ticker.Start()
	var err error
	s.ticker.Do(func() {
		err = s.animator.Initialize(s.surface, s.opts.ParticleCount)
	})
	if err != nil {
		s.ticker.Stop()
	}
	return err
}

func (s *server) close() {
	s.ticker.Do(s.animator.Teardown)
	s.ticker.Stop()
}

func (s *server) routes(r *gin.Engine) {
	r.GET("/frame.png", s.handleFrame)
	r.GET("/options", s.handleOptions)
	r.GET("/healthz", s.handleHealth)
	r.POST("/resize", s.handleResize)
}

func (s *server) handleFrame(c *gin.Context) {
	var buf bytes.Buffer
	var err error
	ok := s.ticker.Do(func() {
		img := s.surface.Composite(s.opts.BackgroundColor(), s.opts.Opacity)
		err = png.Encode(&buf, img)
	})
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "field stopped"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *server) handleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, s.opts)
}

func (s *server) handleHealth(c *gin.Context) {
	var body gin.H
	ok := s.ticker.Do(func() {
		w, h := s.surface.Size()
		body = gin.H{
			"state":     s.animator.State().String(),
			"particles": s.animator.Count(),
			"links":     s.animator.Links(),
			"frames":    s.animator.Frames(),
			"width":     w,
			"height":    h,
		}
	})
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"state": field.StateTornDown.String()})
		return
	}
	c.JSON(http.StatusOK, body)
}

func (s *server) handleResize(c *gin.Context) {
	var req resizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok := s.ticker.Do(func() {
		s.viewport.Resize(req.Width, req.Height)
	})
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "field stopped"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"width": req.Width, "height": req.Height})
}
