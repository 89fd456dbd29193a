// Package ws mantiene las conexiones WebSocket de los clientes y empuja
// notificaciones en tiempo real al empleado dueño de cada conexión.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"github.com/jrfmotorparts/pos-backend/pkg/logger"
)

// client conexión registrada junto con el empleado autenticado que la abrió.
type client struct {
	conn    *websocket.Conn
	staffID string
}

// envelope mensaje dirigido: StaffID vacío = broadcast a todos.
type envelope struct {
	staffID string
	payload []byte
}

// Hub registro de conexiones y despacho de mensajes. Un solo goroutine (Run)
// es dueño del mapa de clientes; el mutex protege los accesos desde Push.
type Hub struct {
	clients    map[*websocket.Conn]string
	register   chan client
	unregister chan *websocket.Conn
	send       chan envelope
	mutex      sync.Mutex
	log        *logger.Logger
}

// NewHub construye el hub.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]string),
		register:   make(chan client),
		unregister: make(chan *websocket.Conn),
		send:       make(chan envelope, 64),
		log:        log.Component("ws"),
	}
}

// Run procesa registros, bajas y envíos. Debe correr en su propio goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mutex.Lock()
			h.clients[c.conn] = c.staffID
			h.mutex.Unlock()
			h.log.Debug().Str("staff_id", c.staffID).Msg("cliente WS conectado")

		case conn := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case msg := <-h.send:
			h.mutex.Lock()
			for conn, staffID := range h.clients {
				if msg.staffID != "" && msg.staffID != staffID {
					continue
				}
				if err := conn.WriteMessage(websocket.TextMessage, msg.payload); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Register anota una conexión del empleado dado.
func (h *Hub) Register(conn *websocket.Conn, staffID string) {
	h.register <- client{conn: conn, staffID: staffID}
}

// Unregister da de baja una conexión.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// Push serializa el payload y lo envía a las conexiones del empleado.
// Si el buffer está lleno el mensaje se descarta: el aviso ya quedó
// persistido y el cliente lo verá al recargar.
func (h *Hub) Push(staffID string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error().Err(err).Msg("serializar mensaje WS")
		return
	}
	select {
	case h.send <- envelope{staffID: staffID, payload: data}:
	default:
		h.log.Warn().Str("staff_id", staffID).Msg("buffer WS lleno, mensaje descartado")
	}
}
