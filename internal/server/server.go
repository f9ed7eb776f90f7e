// Package server exposes the agent over WebSocket. Each client gets its
// own agent session; prompts arrive as text frames and events stream
// back as TLV-framed binary records.
package server

import (
	"context"
	_ "embed"
	"net/http"
	"strings"
	"sync"

	"charm.land/fantasy"
	"github.com/gorilla/websocket"

	agentpkg "github.com/picobot-ai/picobot/internal/agent"
	"github.com/picobot-ai/picobot/internal/logger"
)

//go:embed chat.html
var chatHTML []byte

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// AgentFactory creates a fresh agent per client session.
type AgentFactory func() fantasy.Agent

// Server is the WebSocket front end.
type Server struct {
	httpServer *http.Server
	factory    AgentFactory
}

// New creates a server listening on addr.
func New(addr string, factory AgentFactory) *Server {
	s := &Server{factory: factory}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/", serveChatPage)

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return s
}

// ListenAndServe blocks serving clients until the server is shut down.
func (s *Server) ListenAndServe() error {
	logger.L.WithField("addr", s.httpServer.Addr).Info("serving")
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func serveChatPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(chatHTML)
}

// handleWebSocket runs one client session. Prompts are processed
// sequentially; the read loop naturally queues the next prompt behind
// the current one.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	output := &clientOutput{conn: conn}
	processor := agentpkg.NewProcessorWithOutput(s.factory(), output)

	var messages []fantasy.Message
	ctx := r.Context()

	for {
		kind, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if kind != websocket.TextMessage {
			continue
		}

		prompt := strings.TrimSpace(string(payload))
		if prompt == "" {
			continue
		}

		responseText, err := processor.ProcessPrompt(ctx, prompt, messages)
		if err != nil {
			logger.L.WithError(err).Warn("prompt failed")
			continue
		}

		messages = append(messages, fantasy.NewUserMessage(prompt))
		if responseText != "" {
			messages = append(messages, fantasy.Message{
				Role:    fantasy.MessageRoleAssistant,
				Content: []fantasy.MessagePart{fantasy.TextPart{Text: responseText}},
			})
		}
	}
}

// clientOutput frames processor output onto one WebSocket connection.
type clientOutput struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (o *clientOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.conn.WriteMessage(websocket.BinaryMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (o *clientOutput) WriteString(s string) (int, error) {
	return o.Write([]byte(s))
}

func (o *clientOutput) Flush() error {
	return nil
}
