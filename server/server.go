// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server hosts a scene over HTTP: a single frame loop
// goroutine steps and renders the scene and streams encoded frames
// to websocket clients, which send back pointer and resize events.
package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"image"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/base/iox/imagex"
	"cogentcore.org/tumble/math32"
	"github.com/gorilla/websocket"
)

// Scene is what the server drives each frame.
type Scene interface {
	Update(dt float32) int
	Render() *image.RGBA
	PointerDown(px, py float32) (bool, error)
	Orbit(dx, dy float32)
	Zoom(steps float32)
	Resize(size image.Point) bool
	Status() string
}

// Loader builds a new scene. It is called on start and on reload.
type Loader func() (Scene, error)

// Event is a message from a client. X and Y are the pointer position
// for pointerdown, the drag distance for orbit, and Y is the wheel
// steps for zoom, all in pixels.
type Event struct {
	Type   string  `json:"type"`
	X      float32 `json:"x,omitempty"`
	Y      float32 `json:"y,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
}

// Event types.
const (
	PointerDown = "pointerdown"
	Orbit       = "orbit"
	Zoom        = "zoom"
	Resize      = "resize"
)

// MaxSize is the largest size a client can resize to.
const MaxSize = 4096

// clientBuffer is the number of messages queued per client;
// frames are dropped for clients that fall behind.
const clientBuffer = 2

//go:embed index.html
var indexHTML []byte

type message struct {
	typ  int
	data []byte
}

type client struct {
	conn *websocket.Conn
	out  chan message
}

// Server streams frames of a [Scene] to websocket clients.
type Server struct {

	// Addr is the address to listen on.
	Addr string

	// FrameTime is the time between frames.
	FrameTime time.Duration

	// Format is the encoding of streamed frames.
	Format imagex.Formats

	// ShutdownTimeout bounds how long shutdown waits for connections.
	ShutdownTimeout time.Duration

	load     Loader
	scene    Scene
	size     image.Point
	events   chan Event
	reload   chan struct{}
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte
	frames  int
}

// New returns a new server for scenes built by the given loader,
// which is called once here to build the first scene.
func New(addr string, frameTime time.Duration, load Loader) (*Server, error) {
	if frameTime <= 0 {
		return nil, fmt.Errorf("server.New: frame time %v must be positive", frameTime)
	}
	sc, err := load()
	if err != nil {
		return nil, err
	}
	return &Server{
		Addr:            addr,
		FrameTime:       frameTime,
		Format:          imagex.PNG,
		ShutdownTimeout: 5 * time.Second,
		load:            load,
		scene:           sc,
		events:          make(chan Event, 64),
		reload:          make(chan struct{}, 1),
		clients:         map[*client]struct{}{},
	}, nil
}

// Handler returns the HTTP handler serving the page, the websocket
// at /ws and the latest frame at /frame.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})
	mux.HandleFunc("GET /frame", s.serveFrame)
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

func (s *Server) serveFrame(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	b := s.last
	s.mu.Unlock()
	if b == nil {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", s.Format.ContentType())
	w.Write(b)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	c := &client{conn: conn, out: make(chan message, clientBuffer)}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	if s.last != nil {
		c.out <- message{websocket.BinaryMessage, s.last}
	}
	n := len(s.clients)
	s.mu.Unlock()
	slog.Info("client connected", "remote", r.RemoteAddr, "clients", n)

	go c.write()
	defer s.remove(c)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("websocket read", "err", err)
			}
			return
		}
		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			slog.Warn("invalid client message", "err", err)
			continue
		}
		select {
		case s.events <- ev:
		default:
			slog.Warn("dropping client event, frame loop is behind", "type", ev.Type)
		}
	}
}

// write sends queued messages until the channel is closed.
func (c *client) write() {
	for m := range c.out {
		c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := c.conn.WriteMessage(m.typ, m.data); err != nil {
			slog.Debug("websocket write", "err", err)
			c.conn.Close()
			return
		}
	}
	c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
	c.conn.Close()
}

func (s *Server) remove(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[c]; !ok {
		return
	}
	delete(s.clients, c)
	close(c.out)
	c.conn.Close()
	slog.Info("client disconnected", "clients", len(s.clients))
}

func (s *Server) broadcast(m message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.typ == websocket.BinaryMessage {
		s.last = m.data
		s.frames++
	}
	for c := range s.clients {
		select {
		case c.out <- m:
		default:
		}
	}
}

// NumClients returns the number of connected clients.
func (s *Server) NumClients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Frames returns the number of frames rendered.
func (s *Server) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Reload asks the frame loop to rebuild the scene with the loader.
func (s *Server) Reload() {
	select {
	case s.reload <- struct{}{}:
	default:
	}
}

// Loop runs the frame loop until the context is done: each frame it
// applies pending events, steps the scene by the elapsed time, renders
// and broadcasts the frame. All scene access happens on this goroutine.
func (s *Server) Loop(ctx context.Context) {
	tick := time.NewTicker(s.FrameTime)
	defer tick.Stop()
	defer s.closeClients()
	last := time.Now()
	lastStatus := last
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.reload:
			s.rebuild()
		case ev := <-s.events:
			s.handleEvent(ev)
		case now := <-tick.C:
			dt := float32(now.Sub(last).Seconds())
			last = now
			s.frame(dt)
			if now.Sub(lastStatus) >= time.Second {
				lastStatus = now
				s.sendStatus()
			}
		}
	}
}

// frame steps, renders and broadcasts one frame.
func (s *Server) frame(dt float32) {
	s.scene.Update(dt)
	img := s.scene.Render()
	s.size = img.Bounds().Size()
	b, err := imagex.Encode(img, s.Format)
	if errors.Log(err) != nil {
		return
	}
	s.broadcast(message{websocket.BinaryMessage, b})
}

func (s *Server) sendStatus() {
	b, err := json.Marshal(map[string]string{"type": "status", "text": s.scene.Status()})
	if errors.Log(err) != nil {
		return
	}
	s.broadcast(message{websocket.TextMessage, b})
}

func (s *Server) rebuild() {
	sc, err := s.load()
	if err != nil {
		slog.Error("reloading scene", "err", err)
		return
	}
	if s.size != (image.Point{}) {
		sc.Resize(s.size)
	}
	s.scene = sc
	slog.Info("reloaded scene")
}

// handleEvent applies a client event to the scene.
func (s *Server) handleEvent(ev Event) {
	if !math32.IsFinite(ev.X) || !math32.IsFinite(ev.Y) {
		slog.Warn("invalid client event position", "type", ev.Type)
		return
	}
	switch ev.Type {
	case PointerDown:
		if _, err := s.scene.PointerDown(ev.X, ev.Y); err != nil {
			slog.Warn("pointer down", "err", err)
		}
	case Orbit:
		s.scene.Orbit(ev.X, ev.Y)
	case Zoom:
		s.scene.Zoom(ev.Y)
	case Resize:
		if ev.Width <= 0 || ev.Height <= 0 || ev.Width > MaxSize || ev.Height > MaxSize {
			slog.Warn("invalid resize", "width", ev.Width, "height", ev.Height)
			return
		}
		s.scene.Resize(image.Pt(ev.Width, ev.Height))
	default:
		slog.Warn("unknown client event", "type", ev.Type)
	}
}

func (s *Server) closeClients() {
	s.mu.Lock()
	cs := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		cs = append(cs, c)
	}
	s.mu.Unlock()
	for _, c := range cs {
		s.remove(c)
	}
}

// ListenAndServe serves on [Server.Addr] and runs the frame loop
// until the context is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is like [Server.ListenAndServe] on the given listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	hs := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var wg sync.WaitGroup
	wg.Go(func() { s.Loop(ctx) })
	defer wg.Wait()

	errc := make(chan error, 1)
	go func() { errc <- hs.Serve(ln) }()
	slog.Info("serving", "addr", ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	cancel()
	sctx, scancel := context.WithTimeout(context.Background(), s.ShutdownTimeout)
	defer scancel()
	err := hs.Shutdown(sctx)
	<-errc
	return err
}
