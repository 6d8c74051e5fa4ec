package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vnkhanh/food-adda-backend/models"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub giữ các kết nối dashboard admin để đẩy sự kiện đăng ký mới.
type Hub struct {
	Clients map[*websocket.Conn]*Client
	Mutex   sync.RWMutex
}

var H = Hub{
	Clients: make(map[*websocket.Conn]*Client),
}

// Event gửi xuống dashboard khi danh sách đăng ký thay đổi
type SubmissionEvent struct {
	Type        string  `json:"type"`
	ID          string  `json:"id,omitempty"`
	CourseName  string  `json:"courseName,omitempty"`
	StudentName string  `json:"studentName,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	h.Clients[conn] = client

	go h.writePump(conn)
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if client, ok := h.Clients[conn]; ok {
		close(client.Send)
		delete(h.Clients, conn)
	}
}

// Broadcast gửi message cho toàn bộ client. Client nào đầy buffer thì bỏ qua,
// không block request đang xử lý.
func (h *Hub) Broadcast(data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	for _, client := range h.Clients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

// GetStats trả số client đang kết nối (cho health check).
func (h *Hub) GetStats() map[string]int {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()
	return map[string]int{"clients": len(h.Clients)}
}

func (h *Hub) writePump(conn *websocket.Conn) {
	h.Mutex.RLock()
	client, ok := h.Clients[conn]
	h.Mutex.RUnlock()
	if !ok {
		return
	}

	for msg := range client.Send {
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
	conn.Close()
}

// BroadcastSubmissionCreated báo cho các dashboard đang mở có đăng ký mới.
func BroadcastSubmissionCreated(s *models.FormSubmission) {
	event := SubmissionEvent{
		Type:        "submission_created",
		ID:          s.ID,
		CourseName:  s.CourseName,
		StudentName: s.StudentName,
		Price:       s.Price,
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}
	H.Broadcast(data)
}

// BroadcastSubmissionsChanged báo danh sách đăng ký thay đổi (vd sau khi xóa).
func BroadcastSubmissionsChanged() {
	H.Broadcast([]byte(`{"type": "submissions_changed"}`))
}
