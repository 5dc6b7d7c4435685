package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/deckview/internal/nav"
	"github.com/ziadkadry99/deckview/internal/throttle"
	"github.com/ziadkadry99/deckview/internal/viewport"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format. Fields are used
// depending on Type: scroll carries geometry, key/jump carry navigation,
// commit/input carry edits.
type wsRequest struct {
	Type         string                   `json:"type"`
	ScrollTop    float64                  `json:"scroll_top"`
	ClientHeight float64                  `json:"client_height"`
	Slides       []viewport.RenderedSlide `json:"slides"`
	Key          string                   `json:"key"`
	Index        int                      `json:"index"`
	Slide        int                      `json:"slide"`
	Path         string                   `json:"path"`
	Value        string                   `json:"value"`
	Text         string                   `json:"text"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type    string `json:"type"`
	Index   int    `json:"index"`
	Message string `json:"message,omitempty"`
}

// wsConn is the per-connection navigation state: a throttle gate for
// scroll recomputes and a controller dispatching over the tracker's last
// answer. Both live only as long as the connection.
type wsConn struct {
	id     string
	srv    *Server
	conn   *websocket.Conn
	gate   *throttle.Gate
	ctrl   *nav.Controller
	active int
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.loadErr != "" {
		http.Error(w, "deck not loaded", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	// An empty deck renders one placeholder slide, so navigation always
	// has at least one element to reason about.
	count := s.store.Len()
	if count == 0 {
		count = 1
	}

	c := &wsConn{
		id:   uuid.NewString(),
		srv:  s,
		conn: conn,
		gate: throttle.New(throttle.DefaultWindow),
	}
	c.ctrl = nav.New(count, func() int { return c.active })

	log.Printf("server: viewer %s connected (edit=%v)", c.id, s.cfg.Edit)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			c.sendError("invalid message format")
			continue
		}
		c.handle(req)
	}
}

func (c *wsConn) handle(req wsRequest) {
	switch req.Type {
	case "scroll":
		c.handleScroll(req)
	case "key":
		c.handleKey(req)
	case "jump":
		c.handleJump(req)
	case "commit":
		c.handleCommit(req)
	case "input":
		c.handleInput(req)
	default:
		c.sendError("unknown message type: " + req.Type)
	}
}

// handleScroll recomputes the active slide from reported geometry. The
// gate drops events inside the cooldown window outright, so the indicator
// may lag the true scroll position by up to one window.
func (c *wsConn) handleScroll(req wsRequest) {
	if len(req.Slides) == 0 || !c.gate.Allow() {
		return
	}
	c.active = viewport.ActiveIndex(req.Slides, req.ScrollTop, req.ClientHeight)
	c.ctrl.SetActive(c.active)
	c.send(wsResponse{Type: "active", Index: c.ctrl.Current()})
}

// handleKey dispatches a key press over the tracker's live answer.
// Unrecognized keys are ignored without side effects.
func (c *wsConn) handleKey(req wsRequest) {
	target, moved := c.ctrl.HandleKey(req.Key)
	if !moved {
		return
	}
	c.send(wsResponse{Type: "scroll_to", Index: target})
}

// handleJump handles a dot click: the indicator updates immediately,
// without waiting for the tracker to confirm arrival.
func (c *wsConn) handleJump(req wsRequest) {
	target := c.ctrl.JumpTo(req.Index)
	c.send(wsResponse{Type: "scroll_to", Index: target})
}

func (c *wsConn) handleCommit(req wsRequest) {
	field, err := c.srv.session.Begin(req.Slide, req.Path)
	if err != nil {
		c.sendError(err.Error())
		return
	}
	field.Commit(req.Value)
}

// handleInput is the live-typing channel; only the notes field commits on
// every keystroke.
func (c *wsConn) handleInput(req wsRequest) {
	field, err := c.srv.session.Begin(req.Slide, req.Path)
	if err != nil {
		c.sendError(err.Error())
		return
	}
	field.OnChange(req.Text)
}

func (c *wsConn) send(resp wsResponse) {
	if err := c.conn.WriteJSON(resp); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}

func (c *wsConn) sendError(message string) {
	c.send(wsResponse{Type: "error", Message: message})
}
